// SPDX-License-Identifier: MIT

package matrix

// transposeInline writes aᵀ into a fresh Inline[T, C, R].
// R*C is unchanged by transposition, so the result fits whenever a does.
func transposeInline[T Element, R, C Dim](a Grid[T, R, C]) (Inline[T, C, R], error) {
	var out Inline[T, C, R]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, C, R]{}, matrixErrorf(opTranspose, err)
	}
	src, err := cellsOf[T, R, C](a)
	if err != nil {
		return Inline[T, C, R]{}, matrixErrorf(opTranspose, err)
	}
	ewTranspose(dst, src, dimLen[R](), dimLen[C]())

	return out, nil
}

// transposeIndirect writes aᵀ into a freshly allocated Indirect[T, C, R].
func transposeIndirect[T Element, R, C Dim](a Grid[T, R, C]) (*Indirect[T, C, R], error) {
	out, err := newIndirect[T, C, R]()
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := cellsOf[T, R, C](a)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	ewTranspose(out.cells, src, dimLen[R](), dimLen[C]())

	return out, nil
}

// Transpose returns mᵀ as a new Inline with rows and columns swapped:
// result[j][i] = m[i][j]. The source is never mutated.
//
// Complexity:
//   - Time O(r*c). No heap allocation.
//
// Notes:
//   - Transposition never changes the storage kind; use ToIndirect for that.
func (m Inline[T, R, C]) Transpose() (Inline[T, C, R], error) {
	return transposeInline[T, R, C](&m)
}

// Transpose returns mᵀ as a new Indirect with rows and columns swapped.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Indirect[T, R, C]) Transpose() (*Indirect[T, C, R], error) {
	return transposeIndirect[T, R, C](m)
}

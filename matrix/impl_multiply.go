// SPDX-License-Identifier: MIT
// Package matrix - multiplication engine.
//
// Purpose:
//   - Matrix product (R×K)·(K×C) → (R×C). The shared inner dimension K is a
//     single type parameter, so operands with disagreeing inner dimensions do
//     not compile.
//   - Explicit result placement: MulInline and MulIndirect pick the storage of
//     the result regardless of the operands; Mul (api.go) follows the left operand.
//   - Scalar multiplication (scalar on the left) and its in-place form.
//
// Determinism:
//   - Fixed i→k→j loop order; each cell sums its terms in increasing k using
//     T's own + and * (no wider accumulator).

package matrix

// mulInto resolves both operands and accumulates a·b into the zeroed dst.
func mulInto[T Element, R, K, C Dim](a Grid[T, R, K], b Grid[T, K, C], dst []T) error {
	ac, err := cellsOf[T, R, K](a)
	if err != nil {
		return err
	}
	bc, err := cellsOf[T, K, C](b)
	if err != nil {
		return err
	}
	ewMul(dst, ac, bc, dimLen[R](), dimLen[K](), dimLen[C]())

	return nil
}

// mulInline is the shared body of MulInline and (*Inline).MulAssign.
func mulInline[T Element, R, K, C Dim](tag string, a Grid[T, R, K], b Grid[T, K, C]) (Inline[T, R, C], error) {
	var out Inline[T, R, C]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}
	if err = mulInto(a, b, dst); err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}

	return out, nil
}

// mulIndirect is the shared body of MulIndirect and (*Indirect).MulAssign.
func mulIndirect[T Element, R, K, C Dim](tag string, a Grid[T, R, K], b Grid[T, K, C]) (*Indirect[T, R, C], error) {
	out, err := newIndirect[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = mulInto(a, b, out.cells); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// MulInline computes a·b and places the result in inline storage, whatever
// the storage of a and b.
// MAIN DESCRIPTION:
//   - Placement override: the caller chooses the result storage explicitly.
//
// Implementation:
//   - Stage 1: resolve the inline result buffer (fails when R*C > MaxInlineCells).
//   - Stage 2: resolve both operands (zero-copy for package storages).
//   - Stage 3: result[i][j] = Σ_k a[i][k]*b[k][j].
//
// Errors:
//   - ErrInlineCapacity (result too large to embed), ErrNilMatrix,
//     ErrDimensionMismatch (foreign operand with wrong extents).
//
// Complexity:
//   - Time O(R*K*C). No heap allocation for package-storage operands.
//
// AI-Hints:
//   - For results such as 100×1 · 1×100 use MulIndirect.
func MulInline[T Element, R, K, C Dim](a Grid[T, R, K], b Grid[T, K, C]) (Inline[T, R, C], error) {
	return mulInline[T, R, K, C](opMulInline, a, b)
}

// MulIndirect computes a·b and places the result in a freshly allocated
// Indirect, whatever the storage of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInlineCapacity (inline operand
// of a shape that cannot be inline).
// Complexity: Time O(R*K*C), Space O(R*C).
func MulIndirect[T Element, R, K, C Dim](a Grid[T, R, K], b Grid[T, K, C]) (*Indirect[T, R, C], error) {
	return mulIndirect[T, R, K, C](opMulIndirect, a, b)
}

// MulAssign performs m = m·b in place. b must be C×C so the shape of m is
// unchanged. The product is computed into a temporary and then copied back,
// so m.MulAssign(m) squares m.
// Complexity: Time O(R*C*C).
func (m *Inline[T, R, C]) MulAssign(b Grid[T, C, C]) error {
	res, err := mulInline[T, R, C, C](opMulAssign, m, b)
	if err != nil {
		return err
	}
	*m = res

	return nil
}

// MulAssign performs m = m·b in place (b is C×C); temporary, then copy back.
func (m *Indirect[T, R, C]) MulAssign(b Grid[T, C, C]) error {
	res, err := mulIndirect[T, R, C, C](opMulAssign, m, b)
	if err != nil {
		return err
	}
	copy(m.cells, res.cells)

	return nil
}

// ---------- scalar ----------

// scaleKernel binds s into a unary kernel.
func scaleKernel[T Element](s T) func(dst, a []T) {
	return func(dst, a []T) { ewScale(dst, a, s) }
}

// Scale returns s·m as a new Inline.
// Complexity: Time O(r*c).
func (m Inline[T, R, C]) Scale(s T) (Inline[T, R, C], error) {
	return unaryInline[T, R, C](opScale, &m, scaleKernel(s))
}

// ScaleAssign multiplies every cell of m by s in place (cell *= s).
func (m *Inline[T, R, C]) ScaleAssign(s T) error {
	dst, err := m.buffer()
	if err != nil {
		return matrixErrorf(opScaleAssign, err)
	}
	for idx := range dst {
		dst[idx] *= s
	}

	return nil
}

// Scale returns s·m as a new Indirect.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Indirect[T, R, C]) Scale(s T) (*Indirect[T, R, C], error) {
	return unaryIndirect[T, R, C](opScale, m, scaleKernel(s))
}

// ScaleAssign multiplies every cell of m by s in place.
func (m *Indirect[T, R, C]) ScaleAssign(s T) error {
	if _, _, err := m.extent(); err != nil {
		return matrixErrorf(opScaleAssign, err)
	}
	for idx := range m.cells {
		m.cells[idx] *= s
	}

	return nil
}

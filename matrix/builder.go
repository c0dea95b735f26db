// SPDX-License-Identifier: MIT
// Package matrix - construction factory for both storages.
//
// Purpose:
//   - Produce zero, identity and diagonal matrices, and matrices from literal
//     grids, in either storage. Matrices are never created with undefined contents.
//
// Policy & Contracts:
//   - Identity/Diagonal take a single dimension parameter N, so a non-square
//     identity cannot be requested: the rejection happens at compile time.
//   - The diagonal unit comes from One[T]() directly; no parsing is involved.
//   - Literal grids must be exactly R×C; ragged input is ErrDimensionMismatch.
//
// AI-Hints:
//   - Type parameters are explicit at call sites:
//     matrix.IdentityInline[float64, matrix.D3]().

package matrix

const (
	opZero     = "Zero"
	opIdentity = "Identity"
	opDiagonal = "Diagonal"
	opNew      = "New"
	opCopyOf   = "CopyOf"
)

// ZeroInline returns an R×C inline matrix with every cell equal to Zero[T]().
// Errors: ErrBadShape, ErrInlineCapacity.
// Complexity: O(1), no allocation.
func ZeroInline[T Element, R, C Dim]() (Inline[T, R, C], error) {
	if err := ValidateInlineFit[R, C](); err != nil {
		return Inline[T, R, C]{}, matrixErrorf(opZero, err)
	}

	return Inline[T, R, C]{}, nil
}

// ZeroIndirect returns an R×C heap matrix with every cell equal to Zero[T]().
// Errors: ErrBadShape.
// Complexity: O(r*c) zero-init.
func ZeroIndirect[T Element, R, C Dim]() (*Indirect[T, R, C], error) {
	m, err := newIndirect[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(opZero, err)
	}

	return m, nil
}

// setDiagonal writes v on the main diagonal of an n×n row-major buffer.
func setDiagonal[T Element](cells []T, n int, v T) {
	for i := 0; i < n; i++ {
		cells[i*n+i] = v
	}
}

// IdentityInline returns I_N in inline storage (One[T]() on the diagonal, zero elsewhere).
// MAIN DESCRIPTION:
//   - Square by construction: rows and columns share the marker N.
//
// Errors:
//   - ErrBadShape, ErrInlineCapacity.
//
// Complexity:
//   - Time O(N), no allocation.
func IdentityInline[T Element, N Dim]() (Inline[T, N, N], error) {
	var out Inline[T, N, N]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, N, N]{}, matrixErrorf(opIdentity, err)
	}
	setDiagonal(dst, dimLen[N](), One[T]())

	return out, nil
}

// IdentityIndirect returns I_N in heap storage.
// Errors: ErrBadShape.
// Complexity: Time O(N²) zero-init + O(N) diagonal writes.
func IdentityIndirect[T Element, N Dim]() (*Indirect[T, N, N], error) {
	out, err := newIndirect[T, N, N]()
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	setDiagonal(out.cells, dimLen[N](), One[T]())

	return out, nil
}

// DiagonalInline returns v·I_N in inline storage: the identity scaled in place
// by compound scalar multiplication.
// Errors: ErrBadShape, ErrInlineCapacity.
func DiagonalInline[T Element, N Dim](v T) (Inline[T, N, N], error) {
	out, err := IdentityInline[T, N]()
	if err != nil {
		return Inline[T, N, N]{}, matrixErrorf(opDiagonal, err)
	}
	if err = out.ScaleAssign(v); err != nil {
		return Inline[T, N, N]{}, matrixErrorf(opDiagonal, err)
	}

	return out, nil
}

// DiagonalIndirect returns v·I_N in heap storage.
// Errors: ErrBadShape.
func DiagonalIndirect[T Element, N Dim](v T) (*Indirect[T, N, N], error) {
	out, err := IdentityIndirect[T, N]()
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	if err = out.ScaleAssign(v); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	return out, nil
}

// fillFromLiteral copies a validated literal into a row-major buffer.
func fillFromLiteral[T Element](dst []T, lit [][]T, cols int) {
	for i, row := range lit {
		copy(dst[i*cols:(i+1)*cols], row)
	}
}

// NewInline builds an inline matrix from a literal grid given row by row.
//
//	m, err := matrix.NewInline[float64, matrix.D2, matrix.D3]([][]float64{
//		{1, 2, 3},
//		{4, 5, 6},
//	})
//
// Errors:
//   - ErrDimensionMismatch (wrong row count or ragged rows), ErrBadShape,
//     ErrInlineCapacity.
//
// Complexity:
//   - Time O(r*c), no heap allocation for the result.
func NewInline[T Element, R, C Dim](lit [][]T) (Inline[T, R, C], error) {
	var out Inline[T, R, C]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, R, C]{}, matrixErrorf(opNew, err)
	}
	cols := dimLen[C]()
	if err = validateLiteral(lit, dimLen[R](), cols); err != nil {
		return Inline[T, R, C]{}, matrixErrorf(opNew, err)
	}
	fillFromLiteral(dst, lit, cols)

	return out, nil
}

// NewIndirect builds a heap matrix from a literal grid given row by row.
// The literal is copied; later changes to lit do not affect the result.
// Errors: ErrDimensionMismatch, ErrBadShape.
// Complexity: Time O(r*c), Space O(r*c).
func NewIndirect[T Element, R, C Dim](lit [][]T) (*Indirect[T, R, C], error) {
	out, err := newIndirect[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	cols := dimLen[C]()
	if err = validateLiteral(lit, dimLen[R](), cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	fillFromLiteral(out.cells, lit, cols)

	return out, nil
}

// InlineOf copies any grid into a new inline matrix.
// Generalizes (*Indirect).ToInline to caller-defined grids.
// Errors: ErrInlineCapacity, ErrNilMatrix, ErrDimensionMismatch.
func InlineOf[T Element, R, C Dim](g Grid[T, R, C]) (Inline[T, R, C], error) {
	return unaryInline[T, R, C](opCopyOf, g, copyKernel[T])
}

// IndirectOf copies any grid into a new heap matrix.
// Generalizes Inline.ToIndirect and (*Indirect).Clone to caller-defined grids.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IndirectOf[T Element, R, C Dim](g Grid[T, R, C]) (*Indirect[T, R, C], error) {
	return unaryIndirect[T, R, C](opCopyOf, g, copyKernel[T])
}

// copyKernel is the identity unary kernel.
func copyKernel[T Element](dst, a []T) { copy(dst, a) }

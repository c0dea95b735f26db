// SPDX-License-Identifier: MIT

// Package matrix: element constraint, storage kinds and the capability
// interfaces every operator in the package is written against.
//
// Purpose:
//   - Define which scalar types qualify as matrix cells (Element).
//   - Define the read capability (Grid) and the read/write capability (Matrix)
//     so that each operator is implemented once, regardless of whether the
//     operand is an Inline value, a *Inline, a *Indirect or a caller type.
//
// Notes:
//   - The shape is part of the type: Grid[T, D2, D3] and Grid[T, D3, D2] are
//     distinct interfaces because Shape() returns the dimension markers.

package matrix

import "golang.org/x/exp/constraints"

// Element is the closed capability set of a matrix cell: + += - -= unary -
// * *= closed over the type, plain copy semantics and a zero value.
// Unsigned integers are excluded because negation is not meaningful for them.
type Element interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

// One returns the multiplicative unit of T.
func One[T Element]() T { return 1 }

// Zero returns the additive zero of T.
func Zero[T Element]() T {
	var z T

	return z
}

// Storage names the placement strategy of a matrix.
type Storage uint8

const (
	// StorageInline keeps the cells embedded in the matrix value itself.
	StorageInline Storage = iota
	// StorageIndirect keeps the cells in a separately allocated, exclusively owned block.
	StorageIndirect
)

const (
	_storageInline   = "inline"
	_storageIndirect = "indirect"
	_storageUnknown  = "unknown"
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case StorageInline:
		return _storageInline
	case StorageIndirect:
		return _storageIndirect
	default:
		return _storageUnknown
	}
}

// Grid is anything that can be read as an R×C grid of T.
//
// Inline values, *Inline, *Indirect and caller-defined types all satisfy it,
// which is how the package accepts operands "by value" or "by reference"
// without one operator body per ownership form.
//
// Contract:
//   - Shape returns the zero values of the dimension markers; it exists so the
//     markers take part in the method set and shapes are checked by the compiler.
//   - Rows/Cols return R.Len()/C.Len() for package types; foreign types that
//     disagree are rejected with ErrDimensionMismatch.
//   - At returns ErrOutOfRange for invalid coordinates and never panics.
type Grid[T Element, R, C Dim] interface {
	// Shape returns the dimension markers of the grid.
	Shape() (R, C)

	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Complexity: O(1).
	At(i, j int) (T, error)
}

// Matrix is a Grid with exclusive (mutating) access and a known storage kind.
// *Inline and *Indirect implement it; an Inline value does not, so a read-only
// handle never exposes mutation.
type Matrix[T Element, R, C Dim] interface {
	Grid[T, R, C]

	// Storage reports where the cells live.
	Storage() Storage

	// Row returns a copy of row i.
	Row(i int) ([]T, error)

	// Set assigns v at position (i, j).
	Set(i, j int, v T) error

	// SetRow replaces row i; len(row) must equal Cols().
	SetRow(i int, row []T) error
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix[float64, D2, D3] = (*Inline[float64, D2, D3])(nil)
	_ Matrix[float64, D2, D3] = (*Indirect[float64, D2, D3])(nil)
	_ Grid[int, D3, D3]       = Inline[int, D3, D3]{}
)

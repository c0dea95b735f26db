// SPDX-License-Identifier: MIT

// Package matrix - Inline storage (cells embedded in the value) & safe accessors.
//
// Purpose:
//   - Provide a matrix whose row-major cells live inside the value itself: no
//     indirection, no allocation on construction or copy.
//   - Copying an Inline copies every cell; two Inline values never share state.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Read methods use value receivers, so an Inline value is itself a Grid
//     (the "by value" operand form). Pass &m to avoid copying in hot loops.
//   - Shapes with more than MaxInlineCells cells cannot be inline; use Indirect
//     or the MulIndirect placement override for large products.
//
// Complexity quicksheet:
//   - ZeroInline: O(1) (zero value); At/Set: O(1); ToIndirect: O(r*c); copy: O(MaxInlineCells).

package matrix

import (
	"fmt"
	"strings"
)

// MaxInlineCells is the number of cells an Inline value can embed.
// R*C must not exceed it.
const MaxInlineCells = 256

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers

	typInline   = "Inline"
	typIndirect = "Indirect"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellErrorf wraps an error with a uniform "<Type>.<method>(row,col)" context.
// Preserves the sentinel via %w.
// Complexity: O(1).
func cellErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// Inline is an R×C matrix of T whose cells are embedded in the value.
//   - cells holds R*C elements in row-major order (offset = i*C + j); the
//     tail beyond R*C is unused and always zero.
//   - The zero value of a shape that fits is the zero matrix.
type Inline[T Element, R, C Dim] struct {
	cells [MaxInlineCells]T // embedded row-major storage; only [:R*C] is meaningful
}

// inlineExtent resolves (rows, cols) for an inline shape.
// Returns ErrBadShape for malformed markers and ErrInlineCapacity when R*C
// does not fit into MaxInlineCells.
// Complexity: O(1).
func inlineExtent[R, C Dim]() (rows, cols int, err error) {
	rows, cols, err = shapeOf[R, C]()
	if err != nil {
		return 0, 0, err
	}
	if rows*cols > MaxInlineCells {
		return 0, 0, ErrInlineCapacity
	}

	return rows, cols, nil
}

// buffer returns the meaningful prefix of the embedded cells for writing.
func (m *Inline[T, R, C]) buffer() ([]T, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return nil, err
	}

	return m.cells[:rows*cols], nil
}

// Rows returns R.Len(). Complexity: O(1).
func (m Inline[T, R, C]) Rows() int { return dimLen[R]() }

// Cols returns C.Len(). Complexity: O(1).
func (m Inline[T, R, C]) Cols() int { return dimLen[C]() }

// Shape returns the dimension markers.
func (m Inline[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// Storage reports StorageInline.
func (m Inline[T, R, C]) Storage() Storage { return StorageInline }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: resolve the inline extent (shape and capacity).
//   - Stage 2: bounds check, then load from the embedded buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrBadShape/ErrInlineCapacity for
//     shapes that cannot be inline.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Inline[T, R, C]) At(row, col int) (T, error) {
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return Zero[T](), cellErrorf(typInline, ctxAt, row, col, err)
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return Zero[T](), cellErrorf(typInline, ctxAt, row, col, ErrOutOfRange)
	}

	return m.cells[row*cols+col], nil
}

// Row returns a copy of row i. Mutating the result never affects m.
// Complexity: O(C).
func (m Inline[T, R, C]) Row(i int) ([]T, error) {
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return nil, cellErrorf(typInline, ctxRow, i, 0, err)
	}
	if i < 0 || i >= rows {
		return nil, cellErrorf(typInline, ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, cols)
	copy(out, m.cells[i*cols:(i+1)*cols])

	return out, nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Inline[T, R, C]) Set(row, col int, v T) error {
	if m == nil {
		return cellErrorf(typInline, ctxSet, row, col, ErrNilMatrix)
	}
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return cellErrorf(typInline, ctxSet, row, col, err)
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return cellErrorf(typInline, ctxSet, row, col, ErrOutOfRange)
	}
	m.cells[row*cols+col] = v

	return nil
}

// SetRow replaces row i with the given values.
// Returns ErrOutOfRange for a bad row index and ErrDimensionMismatch when
// len(row) != C. Nothing is written on error.
// Complexity: O(C).
func (m *Inline[T, R, C]) SetRow(i int, row []T) error {
	if m == nil {
		return cellErrorf(typInline, ctxSetRow, i, 0, ErrNilMatrix)
	}
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return cellErrorf(typInline, ctxSetRow, i, 0, err)
	}
	if i < 0 || i >= rows {
		return cellErrorf(typInline, ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(row) != cols {
		return cellErrorf(typInline, ctxSetRow, i, len(row), ErrDimensionMismatch)
	}
	copy(m.cells[i*cols:(i+1)*cols], row)

	return nil
}

// ToIndirect returns a heap-allocated copy of m. The two never alias.
// Complexity: O(r*c) time and memory.
func (m Inline[T, R, C]) ToIndirect() (*Indirect[T, R, C], error) {
	src, err := m.buffer()
	if err != nil {
		return nil, matrixErrorf(opToIndirect, err)
	}
	out := &Indirect[T, R, C]{cells: make([]T, len(src))}
	copy(out.cells, src)

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Shapes that cannot be inline are not visited.
// Complexity: O(r*c).
func (m Inline[T, R, C]) Do(f func(i, j int, v T) bool) {
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return
	}
	visit(m.cells[:rows*cols], rows, cols, f)
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: O(r*c).
func (m *Inline[T, R, C]) Apply(f func(i, j int, v T) T) error {
	dst, err := m.buffer()
	if err != nil {
		return cellErrorf(typInline, ctxApply, 0, 0, err)
	}
	apply(dst, dimLen[R](), dimLen[C](), f)

	return nil
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (m Inline[T, R, C]) String() string {
	rows, cols, err := inlineExtent[R, C]()
	if err != nil {
		return err.Error()
	}

	return format(m.cells[:rows*cols], rows, cols)
}

// visit is the shared row-major visitor behind Do.
func visit[T Element](cells []T, rows, cols int, f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if !f(i, j, cells[base+j]) {
				return
			}
		}
	}
}

// apply is the shared in-place map behind Apply.
func apply[T Element](cells []T, rows, cols int, f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			cells[base+j] = f(i, j, cells[base+j])
		}
	}
}

// format renders rows as "[a, b]\n" lines.
func format[T Element](cells []T, rows, cols int) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			b.WriteString(fmt.Sprint(cells[base+j]))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

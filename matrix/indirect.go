// SPDX-License-Identifier: MIT

// Package matrix - Indirect storage (exclusively owned heap block) & safe accessors.
//
// Purpose:
//   - Hold the row-major cells in a separately allocated block referenced from
//     the matrix, for shapes too large to embed or when values are passed around
//     by pointer.
//   - Ownership is exclusive: Clone, ToInline and every operator allocate a new
//     block and deep-copy; no two *Indirect share cells.
//
// AI-Hints:
//   - Always handle Indirect through *Indirect (constructors return pointers).
//     Copying the struct value would share the block and is not supported.
//
// Complexity quicksheet:
//   - ZeroIndirect: O(r*c) zero-init; At/Set: O(1); Clone/ToInline: O(r*c).

package matrix

// Indirect is an R×C matrix of T whose cells live in an owned heap block.
//   - cells has exactly R*C elements in row-major order (offset = i*C + j).
//   - A nil *Indirect, or one not built by this package, reports ErrNilMatrix.
type Indirect[T Element, R, C Dim] struct {
	cells []T // owned row-major block, len == R*C
}

// newIndirect allocates a zeroed block for the (R, C) shape.
// Errors: ErrBadShape.
// Complexity: O(r*c).
func newIndirect[T Element, R, C Dim]() (*Indirect[T, R, C], error) {
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return nil, err
	}

	return &Indirect[T, R, C]{cells: make([]T, rows*cols)}, nil
}

// extent validates the receiver and resolves (rows, cols).
// Returns ErrNilMatrix for nil or unallocated receivers.
func (m *Indirect[T, R, C]) extent() (rows, cols int, err error) {
	rows, cols, err = shapeOf[R, C]()
	if err != nil {
		return 0, 0, err
	}
	if m == nil || len(m.cells) != rows*cols {
		return 0, 0, ErrNilMatrix
	}

	return rows, cols, nil
}

// Rows returns R.Len(). Complexity: O(1).
func (m *Indirect[T, R, C]) Rows() int { return dimLen[R]() }

// Cols returns C.Len(). Complexity: O(1).
func (m *Indirect[T, R, C]) Cols() int { return dimLen[C]() }

// Shape returns the dimension markers.
func (m *Indirect[T, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// Storage reports StorageIndirect.
func (m *Indirect[T, R, C]) Storage() Storage { return StorageIndirect }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrNilMatrix for an unallocated receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Indirect[T, R, C]) At(row, col int) (T, error) {
	rows, cols, err := m.extent()
	if err != nil {
		return Zero[T](), cellErrorf(typIndirect, ctxAt, row, col, err)
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return Zero[T](), cellErrorf(typIndirect, ctxAt, row, col, ErrOutOfRange)
	}

	return m.cells[row*cols+col], nil
}

// Row returns a copy of row i.
// Complexity: O(C).
func (m *Indirect[T, R, C]) Row(i int) ([]T, error) {
	rows, cols, err := m.extent()
	if err != nil {
		return nil, cellErrorf(typIndirect, ctxRow, i, 0, err)
	}
	if i < 0 || i >= rows {
		return nil, cellErrorf(typIndirect, ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, cols)
	copy(out, m.cells[i*cols:(i+1)*cols])

	return out, nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Indirect[T, R, C]) Set(row, col int, v T) error {
	rows, cols, err := m.extent()
	if err != nil {
		return cellErrorf(typIndirect, ctxSet, row, col, err)
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return cellErrorf(typIndirect, ctxSet, row, col, ErrOutOfRange)
	}
	m.cells[row*cols+col] = v

	return nil
}

// SetRow replaces row i. len(row) must equal C; nothing is written on error.
// Complexity: O(C).
func (m *Indirect[T, R, C]) SetRow(i int, row []T) error {
	rows, cols, err := m.extent()
	if err != nil {
		return cellErrorf(typIndirect, ctxSetRow, i, 0, err)
	}
	if i < 0 || i >= rows {
		return cellErrorf(typIndirect, ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(row) != cols {
		return cellErrorf(typIndirect, ctxSetRow, i, len(row), ErrDimensionMismatch)
	}
	copy(m.cells[i*cols:(i+1)*cols], row)

	return nil
}

// Clone returns a deep copy backed by a new block.
// Complexity: O(r*c) time and memory.
func (m *Indirect[T, R, C]) Clone() (*Indirect[T, R, C], error) {
	if _, _, err := m.extent(); err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	out := &Indirect[T, R, C]{cells: make([]T, len(m.cells))}
	copy(out.cells, m.cells)

	return out, nil
}

// ToInline returns an inline copy of m.
// Errors: ErrInlineCapacity when the shape does not fit, ErrNilMatrix.
// Complexity: O(r*c).
func (m *Indirect[T, R, C]) ToInline() (Inline[T, R, C], error) {
	var out Inline[T, R, C]
	if _, _, err := m.extent(); err != nil {
		return out, matrixErrorf(opToInline, err)
	}
	dst, err := out.buffer()
	if err != nil {
		return out, matrixErrorf(opToInline, err)
	}
	copy(dst, m.cells)

	return out, nil
}

// Do visits each element in row-major order; stops when f returns false.
// Complexity: O(r*c).
func (m *Indirect[T, R, C]) Do(f func(i, j int, v T) bool) {
	rows, cols, err := m.extent()
	if err != nil {
		return
	}
	visit(m.cells, rows, cols, f)
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: O(r*c).
func (m *Indirect[T, R, C]) Apply(f func(i, j int, v T) T) error {
	rows, cols, err := m.extent()
	if err != nil {
		return cellErrorf(typIndirect, ctxApply, 0, 0, err)
	}
	apply(m.cells, rows, cols, f)

	return nil
}

// String provides a readable row-wise dump for diagnostics.
func (m *Indirect[T, R, C]) String() string {
	rows, cols, err := m.extent()
	if err != nil {
		return err.Error()
	}

	return format(m.cells, rows, cols)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) over flat row-major
//     buffers so that every public operator shares the same tight loops.
//   - Resolve any Grid into a flat buffer (cellsOf): package storages are read
//     in place, foreign grids are materialized through At.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→k→j for products).
//   - Kernels never allocate; the caller owns dst.
//   - dst must never alias an input of the product kernel; elementwise kernels
//     tolerate dst == a because each cell is read before it is written.

package matrix

import "fmt"

// cellsOf returns the row-major cells of g.
// MAIN DESCRIPTION:
//   - Zero-copy view for *Inline, Inline and *Indirect; materialized copy for
//     caller-defined grids.
//
// Implementation:
//   - Stage 1: resolve (rows, cols) from the dimension markers.
//   - Stage 2: fast-path type switch on the package storages.
//   - Stage 3: fallback validates Rows/Cols and reads every cell via At.
//
// Errors:
//   - ErrNilMatrix (nil operand or unallocated *Indirect), ErrBadShape,
//     ErrInlineCapacity, ErrDimensionMismatch, At errors from foreign grids.
//
// Complexity:
//   - O(1) on the fast path, O(r*c) time and space on the fallback.
//
// Notes:
//   - The returned slice may alias the operand; callers never write into it.
func cellsOf[T Element, R, C Dim](g Grid[T, R, C]) ([]T, error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, err
	}
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return nil, err
	}
	n := rows * cols

	switch m := g.(type) {
	case *Inline[T, R, C]:
		return m.buffer()
	case Inline[T, R, C]:
		return m.buffer()
	case *Indirect[T, R, C]:
		if len(m.cells) != n {
			return nil, ErrNilMatrix
		}
		return m.cells, nil
	}

	// Fallback: foreign Grid, read through the public accessor.
	if err = ValidateGrid(g); err != nil {
		return nil, err
	}
	out := make([]T, n)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j], err = g.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// ewAdd computes dst[idx] = a[idx] + b[idx].
// Time: O(n). Space: O(1).
func ewAdd[T Element](dst, a, b []T) {
	for idx := range dst {
		dst[idx] = a[idx] + b[idx]
	}
}

// ewSub computes dst[idx] = a[idx] - b[idx].
// Time: O(n). Space: O(1).
func ewSub[T Element](dst, a, b []T) {
	for idx := range dst {
		dst[idx] = a[idx] - b[idx]
	}
}

// ewNeg computes dst[idx] = -a[idx].
func ewNeg[T Element](dst, a []T) {
	for idx := range dst {
		dst[idx] = -a[idx]
	}
}

// ewScale computes dst[idx] = s * a[idx] (scalar on the left).
func ewScale[T Element](dst, a []T, s T) {
	for idx := range dst {
		dst[idx] = s * a[idx]
	}
}

// ewMul accumulates the product of a (rows×inner) and b (inner×cols) into dst.
// dst must be zeroed and must not alias a or b.
// Loop order i→k→j keeps both b and dst walks contiguous; every dst cell still
// sums its terms in increasing k.
// Time: O(rows*inner*cols). Space: O(1).
func ewMul[T Element](dst, a, b []T, rows, inner, cols int) {
	var i, j, k int
	var rowA, rowB, rowR int
	var av T
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = a[rowA+k]
			rowB = k * cols
			for j = 0; j < cols; j++ {
				dst[rowR+j] += av * b[rowB+j]
			}
		}
	}
}

// ewTranspose writes src (rows×cols) into dst as its (cols×rows) transpose.
// src[i*cols+j] → dst[j*rows+i].
func ewTranspose[T Element](dst, src []T, rows, cols int) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[base+j]
		}
	}
}

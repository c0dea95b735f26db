// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap these sentinels with fmt.Errorf("<Op>: %w", ErrX) via matrixErrorf;
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> nil operand -> inline capacity -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a dimension marker does not yield a positive length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/SetRow) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime extents disagree with the
	// declared shape: ragged literals, SetRow with a wrong length, or a foreign
	// Grid whose Rows/Cols contradict its dimension markers.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInlineCapacity signals that the shape has more than MaxInlineCells cells
	// and cannot be held in inline storage. Use the Indirect variant instead.
	ErrInlineCapacity = errors.New("matrix: shape exceeds inline capacity")

	// ErrNilMatrix indicates a nil operand or an unallocated *Indirect.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

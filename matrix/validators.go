// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for runtime checks that the
//    type system cannot express: malformed dimension markers, nil operands,
//    foreign grids whose extents contradict their markers, literal grids.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except the
//    error value on failure).
//
// Note:
//  - Shape compatibility between operands is NOT checked here: it is enforced
//    by the compiler through the dimension type parameters.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures g is usable: not a nil interface, not a nil
// *Inline and not a nil or unallocated *Indirect.
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil[T Element, R, C Dim](g Grid[T, R, C]) error {
	switch m := g.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Inline[T, R, C]:
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Indirect[T, R, C]:
		if m == nil || m.cells == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateShape ensures both dimension markers yield positive lengths.
// Returns ErrBadShape otherwise.
// Complexity: O(1).
func ValidateShape[R, C Dim]() error {
	if _, _, err := shapeOf[R, C](); err != nil {
		return validatorErrorf("ValidateShape", err)
	}

	return nil
}

// ValidateInlineFit ensures an (R, C) matrix can be held in inline storage.
// Returns ErrBadShape or ErrInlineCapacity.
// Complexity: O(1).
func ValidateInlineFit[R, C Dim]() error {
	if _, _, err := inlineExtent[R, C](); err != nil {
		return validatorErrorf("ValidateInlineFit", err)
	}

	return nil
}

// ValidateGrid runs the full operand check used by every operator:
// NotNil → Shape → runtime extents agree with the markers.
// Returns ErrNilMatrix, ErrBadShape or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateGrid[T Element, R, C Dim](g Grid[T, R, C]) error {
	if err := ValidateNotNil(g); err != nil {
		return err
	}
	rows, cols, err := shapeOf[R, C]()
	if err != nil {
		return validatorErrorf("ValidateGrid", err)
	}
	if g.Rows() != rows {
		return validatorErrorf("ValidateGrid: Rows", ErrDimensionMismatch)
	}
	if g.Cols() != cols {
		return validatorErrorf("ValidateGrid: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateLiteral ensures a literal grid is exactly rows×cols (no ragged rows).
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(rows).
func validateLiteral[T Element](lit [][]T, rows, cols int) error {
	if len(lit) != rows {
		return validatorErrorf(fmt.Sprintf("validateLiteral: %d rows, want %d", len(lit), rows), ErrDimensionMismatch)
	}
	for i, row := range lit {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("validateLiteral: row %d has %d cells, want %d", i, len(row), cols), ErrDimensionMismatch)
		}
	}

	return nil
}

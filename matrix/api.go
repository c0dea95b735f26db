// SPDX-License-Identifier: MIT
// Package matrix - public operator facades with storage-follows-left placement.
//
// Purpose:
//   - Provide one entry point per operator that accepts any Grid operands and
//     places the result in the storage of the LEFT (or only) matrix operand.
//   - Keep the placement rule explicit and in one place (placementOf).
//
// Placement rule:
//   - Left operand Inline or *Inline            → result *Inline.
//   - Left operand *Indirect                    → result *Indirect.
//   - Left operand reporting Storage() (Matrix) → that storage.
//   - Any other Grid                            → result *Indirect.
//   - The right operand never influences placement. To choose the storage
//     explicitly use the placement overrides MulInline / MulIndirect, or the
//     methods of the concrete types (which always follow the receiver).
//
// Determinism & Policy:
//   - Facades never change loop orders; they only choose the result storage.
//   - On error the returned Matrix is a nil interface, never a typed nil.

package matrix

// placementOf reports where a result computed from left operand g goes.
func placementOf[T Element, R, C Dim](g Grid[T, R, C]) Storage {
	switch m := g.(type) {
	case Inline[T, R, C], *Inline[T, R, C]:
		return StorageInline
	case *Indirect[T, R, C]:
		return StorageIndirect
	case interface{ Storage() Storage }:
		return m.Storage()
	}

	return StorageIndirect
}

// PlacementOf exposes the storage-follows-left rule: it returns the storage
// that Add, Sub, Neg, Mul, Scale and Transpose choose for a left operand g.
func PlacementOf[T Element, R, C Dim](g Grid[T, R, C]) Storage {
	return placementOf(g)
}

// placeInline and placeIndirect turn a computed result into a Matrix, keeping
// failed results as a nil interface.
func placeInline[T Element, R, C Dim](out Inline[T, R, C], err error) (Matrix[T, R, C], error) {
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func placeIndirect[T Element, R, C Dim](out *Indirect[T, R, C], err error) (Matrix[T, R, C], error) {
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Add computes the element-wise sum a + b; the result storage follows a.
// Implementation:
//   - Stage 1: choose placement from a.
//   - Stage 2: run the shared elementwise body into a fresh result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (foreign operand), ErrInlineCapacity.
//
// Complexity:
//   - Time O(r*c).
func Add[T Element, R, C Dim](a, b Grid[T, R, C]) (Matrix[T, R, C], error) {
	if placementOf(a) == StorageInline {
		return placeInline(binaryInline[T, R, C](opAdd, a, b, ewAdd[T]))
	}

	return placeIndirect(binaryIndirect[T, R, C](opAdd, a, b, ewAdd[T]))
}

// Sub computes the element-wise difference a - b; the result storage follows a.
// Complexity: Time O(r*c).
func Sub[T Element, R, C Dim](a, b Grid[T, R, C]) (Matrix[T, R, C], error) {
	if placementOf(a) == StorageInline {
		return placeInline(binaryInline[T, R, C](opSub, a, b, ewSub[T]))
	}

	return placeIndirect(binaryIndirect[T, R, C](opSub, a, b, ewSub[T]))
}

// Neg computes -a; the result storage follows a.
func Neg[T Element, R, C Dim](a Grid[T, R, C]) (Matrix[T, R, C], error) {
	if placementOf(a) == StorageInline {
		return placeInline(unaryInline[T, R, C](opNeg, a, ewNeg[T]))
	}

	return placeIndirect(unaryIndirect[T, R, C](opNeg, a, ewNeg[T]))
}

// Mul computes the matrix product a·b of an R×K and a K×C grid; the result
// (R×C) storage follows a.
// MAIN DESCRIPTION:
//   - The shared inner dimension K is one type parameter: a·b with
//     disagreeing inner dimensions does not compile.
//
// Errors:
//   - ErrInlineCapacity when a is inline but R×C cannot be; use MulIndirect.
//   - ErrNilMatrix, ErrDimensionMismatch (foreign operand).
//
// Complexity:
//   - Time O(R*K*C).
func Mul[T Element, R, K, C Dim](a Grid[T, R, K], b Grid[T, K, C]) (Matrix[T, R, C], error) {
	if placementOf(a) == StorageInline {
		return placeInline(mulInline[T, R, K, C](opMul, a, b))
	}

	return placeIndirect(mulIndirect[T, R, K, C](opMul, a, b))
}

// Scale computes s·a (scalar on the left); the result storage follows a.
// Complexity: Time O(r*c).
func Scale[T Element, R, C Dim](s T, a Grid[T, R, C]) (Matrix[T, R, C], error) {
	if placementOf(a) == StorageInline {
		return placeInline(unaryInline[T, R, C](opScale, a, scaleKernel(s)))
	}

	return placeIndirect(unaryIndirect[T, R, C](opScale, a, scaleKernel(s)))
}

// Transpose computes aᵀ (C×R); the result storage follows a.
// Complexity: Time O(r*c).
func Transpose[T Element, R, C Dim](a Grid[T, R, C]) (Matrix[T, C, R], error) {
	if placementOf(a) == StorageInline {
		return placeInline(transposeInline[T, R, C](a))
	}

	return placeIndirect(transposeIndirect[T, R, C](a))
}

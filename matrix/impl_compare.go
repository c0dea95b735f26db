// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold identical cells, whatever their storages.
// Errors: ErrNilMatrix, ErrDimensionMismatch (foreign operand), ErrBadShape.
// Complexity: Time O(r*c), Space O(1) for package storages.
func Equal[T Element, R, C Dim](a, b Grid[T, R, C]) (bool, error) {
	ac, err := cellsOf[T, R, C](a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	bc, err := cellsOf[T, R, C](b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range ac {
		if ac[idx] != bc[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for float grids.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - Tolerances come from WithRelTol/WithAbsTol (DefaultRelTol/DefaultAbsTol otherwise).
//   - Any NaN cell makes the grids not close; an infinity is only close to
//     the same infinity.
//
// Complexity:
//   - Time O(r*c), Space O(1) for package storages. Early exit on first violation.
func AllClose[T constraints.Float, R, C Dim](a, b Grid[T, R, C], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	ac, err := cellsOf[T, R, C](a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bc, err := cellsOf[T, R, C](b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv, diff float64
	for idx := range ac {
		av, bv = float64(ac[idx]), float64(bc[idx])
		if av == bv {
			continue // covers equal infinities
		}
		diff = math.Abs(av - bv)
		if math.IsNaN(diff) || math.IsInf(diff, 0) || diff > o.absTol+o.relTol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

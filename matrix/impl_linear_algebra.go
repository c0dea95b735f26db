// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction and negation for
// both storages. Every operator is written once against Grid; the result is
// always a freshly allocated matrix of the receiver's storage kind.
//
// Purpose:
//   - Declare operation tags shared by all kernels for uniform error reporting.
//   - Implement the elementwise family (Add, Sub, Neg) and its compound forms.
//
// Notes:
//   - Compound forms (AddAssign, SubAssign) compute the complete result into a
//     temporary and copy it back, so the receiver may alias the operand.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNeg         = "Neg"
	opAddAssign   = "AddAssign"
	opSubAssign   = "SubAssign"
	opMul         = "Mul"
	opMulInline   = "MulInline"
	opMulIndirect = "MulIndirect"
	opMulAssign   = "MulAssign"
	opScale       = "Scale"
	opScaleAssign = "ScaleAssign"
	opTranspose   = "Transpose"
	opToInline    = "ToInline"
	opToIndirect  = "ToIndirect"
	opClone       = "Clone"
	opEqual       = "Equal"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the wrapped error via %w.
// Use only when err != nil.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Add", "MulInline").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryInto resolves both operands and runs kern into dst.
func binaryInto[T Element, R, C Dim](a, b Grid[T, R, C], dst []T, kern func(dst, a, b []T)) error {
	ac, err := cellsOf[T, R, C](a)
	if err != nil {
		return err
	}
	bc, err := cellsOf[T, R, C](b)
	if err != nil {
		return err
	}
	kern(dst, ac, bc)

	return nil
}

// binaryInline computes kern(a, b) into a fresh Inline.
// MAIN DESCRIPTION:
//   - Shared body of every elementwise binary operator with an inline result.
//
// Implementation:
//   - Stage 1: resolve the inline buffer of the result (capacity check).
//   - Stage 2: resolve both operands (zero-copy for package storages).
//   - Stage 3: run the kernel; on error return the zero value, never a partial result.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the result value.
func binaryInline[T Element, R, C Dim](tag string, a, b Grid[T, R, C], kern func(dst, a, b []T)) (Inline[T, R, C], error) {
	var out Inline[T, R, C]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}
	if err = binaryInto(a, b, dst, kern); err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}

	return out, nil
}

// binaryIndirect computes kern(a, b) into a freshly allocated Indirect.
// Complexity: Time O(r*c), Space O(r*c).
func binaryIndirect[T Element, R, C Dim](tag string, a, b Grid[T, R, C], kern func(dst, a, b []T)) (*Indirect[T, R, C], error) {
	out, err := newIndirect[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = binaryInto(a, b, out.cells, kern); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// unaryInline computes kern(a) into a fresh Inline.
func unaryInline[T Element, R, C Dim](tag string, a Grid[T, R, C], kern func(dst, a []T)) (Inline[T, R, C], error) {
	var out Inline[T, R, C]
	dst, err := out.buffer()
	if err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}
	src, err := cellsOf[T, R, C](a)
	if err != nil {
		return Inline[T, R, C]{}, matrixErrorf(tag, err)
	}
	kern(dst, src)

	return out, nil
}

// unaryIndirect computes kern(a) into a freshly allocated Indirect.
func unaryIndirect[T Element, R, C Dim](tag string, a Grid[T, R, C], kern func(dst, a []T)) (*Indirect[T, R, C], error) {
	out, err := newIndirect[T, R, C]()
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	src, err := cellsOf[T, R, C](a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	kern(out.cells, src)

	return out, nil
}

// ---------- Inline ----------

// Add returns m + b as a new Inline, whatever the storage of b.
// result[i][j] = m[i][j] + b[i][j].
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (foreign b with wrong extents).
//
// Complexity:
//   - Time O(r*c). No heap allocation when b is a package storage.
func (m Inline[T, R, C]) Add(b Grid[T, R, C]) (Inline[T, R, C], error) {
	return binaryInline[T, R, C](opAdd, &m, b, ewAdd[T])
}

// Sub returns m - b as a new Inline.
// Complexity: Time O(r*c).
func (m Inline[T, R, C]) Sub(b Grid[T, R, C]) (Inline[T, R, C], error) {
	return binaryInline[T, R, C](opSub, &m, b, ewSub[T])
}

// Neg returns -m as a new Inline.
func (m Inline[T, R, C]) Neg() (Inline[T, R, C], error) {
	return unaryInline[T, R, C](opNeg, &m, ewNeg[T])
}

// AddAssign performs m += b in place.
// The full sum is computed into a temporary Inline before being copied back,
// so m.AddAssign(m) (or &m) doubles every cell.
// Complexity: Time O(r*c).
func (m *Inline[T, R, C]) AddAssign(b Grid[T, R, C]) error {
	res, err := binaryInline[T, R, C](opAddAssign, m, b, ewAdd[T])
	if err != nil {
		return err
	}
	*m = res

	return nil
}

// SubAssign performs m -= b in place (temporary, then copy back).
func (m *Inline[T, R, C]) SubAssign(b Grid[T, R, C]) error {
	res, err := binaryInline[T, R, C](opSubAssign, m, b, ewSub[T])
	if err != nil {
		return err
	}
	*m = res

	return nil
}

// ---------- Indirect ----------

// Add returns m + b as a new Indirect, whatever the storage of b.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Indirect[T, R, C]) Add(b Grid[T, R, C]) (*Indirect[T, R, C], error) {
	return binaryIndirect[T, R, C](opAdd, m, b, ewAdd[T])
}

// Sub returns m - b as a new Indirect.
func (m *Indirect[T, R, C]) Sub(b Grid[T, R, C]) (*Indirect[T, R, C], error) {
	return binaryIndirect[T, R, C](opSub, m, b, ewSub[T])
}

// Neg returns -m as a new Indirect.
func (m *Indirect[T, R, C]) Neg() (*Indirect[T, R, C], error) {
	return unaryIndirect[T, R, C](opNeg, m, ewNeg[T])
}

// AddAssign performs m += b in place.
// The sum goes into a fresh Indirect first and is then copied into m's block,
// so aliasing b and m is safe.
func (m *Indirect[T, R, C]) AddAssign(b Grid[T, R, C]) error {
	res, err := binaryIndirect[T, R, C](opAddAssign, m, b, ewAdd[T])
	if err != nil {
		return err
	}
	copy(m.cells, res.cells)

	return nil
}

// SubAssign performs m -= b in place (temporary, then copy back).
func (m *Indirect[T, R, C]) SubAssign(b Grid[T, R, C]) error {
	res, err := binaryIndirect[T, R, C](opSubAssign, m, b, ewSub[T])
	if err != nil {
		return err
	}
	copy(m.cells, res.cells)

	return nil
}

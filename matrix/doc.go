// SPDX-License-Identifier: MIT

// Package matrix implements fixed-dimension matrices with compile-time shapes
// and two storage strategies.
//
// Shapes:
//
//   - Every dimension is a zero-size marker type implementing Dim. The package
//     predeclares D1..D16, D32, D64, D128 and D256; callers add their own:
//
//     type D100 struct{}
//     func (D100) Len() int { return 100 }
//
//   - The markers are part of the matrix type, so Add of a 2×3 and a 3×2, or
//     a product whose inner dimensions differ, is rejected by the compiler.
//   - Identity and diagonal constructors take a single marker N and so only
//     exist for square shapes.
//
// Storages:
//
//   - Inline[T, R, C] embeds up to MaxInlineCells cells in the value itself.
//     Copying the value copies the matrix. Inline values are read-only Grid
//     operands; *Inline is the mutable Matrix.
//   - *Indirect[T, R, C] owns a heap block of exactly R*C cells. Every
//     operation allocates its own block; blocks are never shared.
//
// Operators:
//
//   - Methods always return the receiver's storage kind: a.Add(b), a.Sub(b),
//     a.Neg(), a.Scale(s), a.Transpose(), plus AddAssign, SubAssign,
//     MulAssign and ScaleAssign for in-place updates.
//   - Package functions Add, Sub, Neg, Scale, Transpose and Mul accept any
//     Grid and place the result in the storage of the left operand.
//   - MulInline and MulIndirect choose the result storage explicitly.
//
// Errors:
//
//   - Operations return wrapped sentinels (ErrOutOfRange, ErrInlineCapacity,
//     ErrNilMatrix, ErrDimensionMismatch, ErrBadShape); match them with
//     errors.Is. Nothing panics on user input; only the Option constructors
//     panic on nonsensical tolerances.
//
// Determinism:
//
//   - Fixed loop orders: row-major for element-wise work, i→k→j for products.
//     Each product cell sums its terms in increasing k using T's own
//     arithmetic, so results are bitwise reproducible.
package matrix

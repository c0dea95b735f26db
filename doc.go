// SPDX-License-Identifier: MIT

// Package fixmat is a small library of fixed-dimension matrices whose shapes
// are checked by the compiler.
//
// What is fixmat?
//
//	A pure-Go, generic matrix toolkit that brings together:
//		• Compile-time shapes: dimensions are marker types (matrix.D2, matrix.D3, ...)
//		• Two storages: Inline (cells embedded in the value) and Indirect (owned heap block)
//		• Element-wise algebra: Add, Sub, Neg and their in-place forms
//		• Multiplication: storage follows the left operand, with explicit
//		  MulInline / MulIndirect placement overrides
//		• Scalar multiplication, element access and transpose
//
// Shape errors are compile errors:
//
//	a, _ := matrix.NewInline[float64, matrix.D2, matrix.D3](...)
//	b, _ := matrix.NewInline[float64, matrix.D2, matrix.D3](...)
//	_, _ = matrix.Mul(a, b) // does not compile: inner dimensions D3 and D2 differ
//
// Everything lives in the matrix/ subpackage.
package fixmat

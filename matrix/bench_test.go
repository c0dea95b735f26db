// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the core operators on both
// storages, using deterministic random fill.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkInline4  matrix.Inline[float64, matrix.D4, matrix.D4]
	sinkInline16 matrix.Inline[float64, matrix.D16, matrix.D16]
	sinkIndirect *matrix.Indirect[float64, matrix.D64, matrix.D64]
	sinkM        matrix.Matrix[float64, matrix.D16, matrix.D16]
	sinkB        bool
)

func BenchmarkAdd(b *testing.B) {
	b.Run("inline/n=16", func(b *testing.B) {
		x, err := matrix.InlineOf(randomIndirect[matrix.D16, matrix.D16](b, 1))
		if err != nil {
			b.Fatal(err)
		}
		y, err := matrix.InlineOf(randomIndirect[matrix.D16, matrix.D16](b, 2))
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkInline16, err = x.Add(&y)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("indirect/n=64", func(b *testing.B) {
		x := randomIndirect[matrix.D64, matrix.D64](b, 1)
		y := randomIndirect[matrix.D64, matrix.D64](b, 2)
		b.ReportAllocs()
		b.ResetTimer()
		var err error
		for i := 0; i < b.N; i++ {
			sinkIndirect, err = x.Add(y)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkAddAssign(b *testing.B) {
	x, err := matrix.InlineOf(randomIndirect[matrix.D16, matrix.D16](b, 3))
	if err != nil {
		b.Fatal(err)
	}
	y := x
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = x.AddAssign(&y); err != nil {
			b.Fatal(err)
		}
	}
	sinkInline16 = x
}

func BenchmarkMul(b *testing.B) {
	b.Run("inline/n=4", func(b *testing.B) {
		x, err := matrix.InlineOf(randomIndirect[matrix.D4, matrix.D4](b, 4))
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkInline4, err = matrix.MulInline(&x, &x)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("indirect/n=64", func(b *testing.B) {
		x := randomIndirect[matrix.D64, matrix.D64](b, 5)
		y := randomIndirect[matrix.D64, matrix.D64](b, 6)
		b.ReportAllocs()
		b.ResetTimer()
		var err error
		for i := 0; i < b.N; i++ {
			sinkIndirect, err = matrix.MulIndirect(x, y)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("follow-left/n=16", func(b *testing.B) {
		x, err := matrix.InlineOf(randomIndirect[matrix.D16, matrix.D16](b, 7))
		if err != nil {
			b.Fatal(err)
		}
		y := randomIndirect[matrix.D16, matrix.D16](b, 8)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkM, err = matrix.Mul(&x, y)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("fallback/n=16", func(b *testing.B) {
		x := randomIndirect[matrix.D16, matrix.D16](b, 9)
		y := randomIndirect[matrix.D16, matrix.D16](b, 10)
		b.ReportAllocs()
		b.ResetTimer()
		var err error
		for i := 0; i < b.N; i++ {
			sinkM, err = matrix.Mul(hidden(x), hidden(y))
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkTranspose(b *testing.B) {
	x := randomIndirect[matrix.D64, matrix.D64](b, 11)
	b.ReportAllocs()
	b.ResetTimer()
	var err error
	for i := 0; i < b.N; i++ {
		sinkIndirect, err = x.Transpose()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAllClose(b *testing.B) {
	x := randomIndirect[matrix.D64, matrix.D64](b, 12)
	y, err := x.Clone()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB, err = matrix.AllClose(x, y)
		if err != nil {
			b.Fatal(err)
		}
	}
}

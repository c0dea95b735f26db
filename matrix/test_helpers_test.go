// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide caller-defined dimension markers and grid wrappers.
//   • Keep fixture construction one line per matrix.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// Caller-defined dimension markers.
type (
	D100  struct{}
	D512  struct{}
	D1500 struct{}
	dZero struct{}
	dNeg  struct{}
)

func (D100) Len() int  { return 100 }
func (D512) Len() int  { return 512 }
func (D1500) Len() int { return 1500 }
func (dZero) Len() int { return 0 }
func (dNeg) Len() int  { return -3 }

// hide WRAPS any Grid to hide its concrete type from type switches.
// Implementation:
//   - Embed matrix.Grid to forward Shape/Rows/Cols/At.
//
// Behavior highlights:
//   - Forces the At fallback path in code under test.
//   - Has no Storage method, so follow-left placement picks Indirect.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt to isolate path differences.
type hide[T matrix.Element, R, C matrix.Dim] struct {
	matrix.Grid[T, R, C]
}

// hidden wraps g into hide with inferred type arguments.
func hidden[T matrix.Element, R, C matrix.Dim](g matrix.Grid[T, R, C]) hide[T, R, C] {
	return hide[T, R, C]{g}
}

// liar reports a row count that contradicts its R marker.
type liar[T matrix.Element, R, C matrix.Dim] struct {
	matrix.Grid[T, R, C]
}

func (liar[T, R, C]) Rows() int { return 0 }

// failing returns an error from every At call.
type failing[T matrix.Element, R, C matrix.Dim] struct {
	matrix.Grid[T, R, C]
}

func (failing[T, R, C]) At(i, j int) (T, error) { return matrix.Zero[T](), matrix.ErrOutOfRange }

// placed is a caller type that reports its own storage kind.
type placed[T matrix.Element, R, C matrix.Dim] struct {
	matrix.Grid[T, R, C]
	storage matrix.Storage
}

func (p placed[T, R, C]) Storage() matrix.Storage { return p.storage }

// mustInline builds an inline matrix from lit or fails the test.
func mustInline[T matrix.Element, R, C matrix.Dim](t testing.TB, lit [][]T) matrix.Inline[T, R, C] {
	t.Helper()
	m, err := matrix.NewInline[T, R, C](lit)
	require.NoError(t, err)

	return m
}

// mustIndirect builds a heap matrix from lit or fails the test.
func mustIndirect[T matrix.Element, R, C matrix.Dim](t testing.TB, lit [][]T) *matrix.Indirect[T, R, C] {
	t.Helper()
	m, err := matrix.NewIndirect[T, R, C](lit)
	require.NoError(t, err)

	return m
}

// rowsOf reads g through At into a [][]T.
func rowsOf[T matrix.Element, R, C matrix.Dim](t testing.TB, g matrix.Grid[T, R, C]) [][]T {
	t.Helper()
	out := make([][]T, g.Rows())
	for i := range out {
		out[i] = make([]T, g.Cols())
		for j := range out[i] {
			v, err := g.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireCells asserts that g holds exactly want.
func requireCells[T matrix.Element, R, C matrix.Dim](t testing.TB, want [][]T, g matrix.Grid[T, R, C]) {
	t.Helper()
	require.Equal(t, want, rowsOf(t, g))
}

// randomIndirect fills an R×C heap matrix with deterministic values in [-1, 1).
func randomIndirect[R, C matrix.Dim](t testing.TB, seed int64) *matrix.Indirect[float64, R, C] {
	t.Helper()
	m, err := matrix.ZeroIndirect[float64, R, C]()
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))

	return m
}

// randomIntInline fills an R×C inline matrix with deterministic ints in [-50, 50).
func randomIntInline[R, C matrix.Dim](t testing.TB, seed int64) matrix.Inline[int64, R, C] {
	t.Helper()
	m, err := matrix.ZeroInline[int64, R, C]()
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, m.Apply(func(_, _ int, _ int64) int64 {
		return rng.Int63n(100) - 50
	}))

	return m
}

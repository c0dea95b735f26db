// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the storage-follows-left facades.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestPlacementOf pins the placement rule for every kind of left operand.
func TestPlacementOf(t *testing.T) {
	t.Parallel()

	s := mustInline[float64, matrix.D2, matrix.D2](t, litA)
	h := mustIndirect[float64, matrix.D2, matrix.D2](t, litA)

	tests := []struct {
		name string
		g    matrix.Grid[float64, matrix.D2, matrix.D2]
		want matrix.Storage
	}{
		{"inline value", s, matrix.StorageInline},
		{"inline pointer", &s, matrix.StorageInline},
		{"indirect", h, matrix.StorageIndirect},
		{"foreign", hidden(s), matrix.StorageIndirect},
		{"foreign reporting inline", placed[float64, matrix.D2, matrix.D2]{h, matrix.StorageInline}, matrix.StorageInline},
		{"foreign reporting indirect", placed[float64, matrix.D2, matrix.D2]{s, matrix.StorageIndirect}, matrix.StorageIndirect},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.PlacementOf(tc.g))

			sum, err := matrix.Add(tc.g, h)
			require.NoError(t, err)
			require.Equal(t, tc.want, sum.Storage())
			requireCells(t, [][]float64{{2, 4}, {6, 8}}, sum)
		})
	}
}

// TestFacadesIgnoreRightOperand ensures only the left operand decides placement.
func TestFacadesIgnoreRightOperand(t *testing.T) {
	s := mustInline[int, matrix.D2, matrix.D2](t, [][]int{{1, 2}, {3, 4}})
	h := mustIndirect[int, matrix.D2, matrix.D2](t, [][]int{{1, 1}, {1, 1}})

	d, err := matrix.Sub(h, s)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageIndirect, d.Storage())
	requireCells(t, [][]int{{0, -1}, {-2, -3}}, d)

	d, err = matrix.Sub(s, h)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageInline, d.Storage())
	requireCells(t, [][]int{{0, 1}, {2, 3}}, d)

	n, err := matrix.Neg(s)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageInline, n.Storage())
	requireCells(t, [][]int{{-1, -2}, {-3, -4}}, n)

	sc, err := matrix.Scale(10, h)
	require.NoError(t, err)
	require.Equal(t, matrix.StorageIndirect, sc.Storage())
	requireCells(t, [][]int{{10, 10}, {10, 10}}, sc)
}

// TestFacadeResultsAreMutable ensures results are exclusive handles.
func TestFacadeResultsAreMutable(t *testing.T) {
	s := mustInline[int, matrix.D2, matrix.D2](t, [][]int{{1, 2}, {3, 4}})

	sum, err := matrix.Add(s, s)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 0, 0))
	require.NoError(t, sum.SetRow(1, []int{9, 9}))
	requireCells(t, [][]int{{0, 4}, {9, 9}}, sum)
	requireCells(t, [][]int{{1, 2}, {3, 4}}, s)
}

// TestFacadeErrorsReturnNilInterface ensures failing facades never return typed nils.
func TestFacadeErrorsReturnNilInterface(t *testing.T) {
	h := mustIndirect[int, matrix.D2, matrix.D2](t, [][]int{{1, 2}, {3, 4}})
	var nilH *matrix.Indirect[int, matrix.D2, matrix.D2]

	m, err := matrix.Add[int, matrix.D2, matrix.D2](h, nilH)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.True(t, m == nil)

	m, err = matrix.Neg[int, matrix.D2, matrix.D2](nilH)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.True(t, m == nil)

	m, err = matrix.Scale[int, matrix.D2, matrix.D2](2, liar[int, matrix.D2, matrix.D2]{h})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.True(t, m == nil)
}

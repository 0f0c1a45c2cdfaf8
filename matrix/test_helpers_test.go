// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the store, row operations and engine.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// eps is the tolerance for comparisons that involve non-dyadic divisions.
const eps = 1e-12

// MustFromRows builds a matrix from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// requireRowsInDelta compares every cell of m against want within delta.
func requireRowsInDelta(t *testing.T, want [][]float64, m *matrix.Matrix, delta float64) {
	t.Helper()
	got := m.RowsData()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], delta, "row %d", i)
	}
}

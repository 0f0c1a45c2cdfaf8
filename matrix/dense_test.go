// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Matrix store.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// TestNewInvalidShape ensures New rejects non-positive and oversized column counts.
func TestNewInvalidShape(t *testing.T) {
	_, err := matrix.New(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New(-3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New(5, matrix.WithCapacity(2, 4))
	require.ErrorIs(t, err, matrix.ErrCapacityExceeded)
}

func TestNewStartsEmpty(t *testing.T) {
	m, err := matrix.New(3)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 3, cols)

	rc, cc := m.Capacity()
	assert.Equal(t, matrix.DefaultRowCapacity, rc)
	assert.Equal(t, matrix.DefaultColCapacity, cc)
}

// TestAppendRowGrowsByOne checks that each append adds exactly one row and
// leaves earlier rows untouched.
func TestAppendRowGrowsByOne(t *testing.T) {
	m, err := matrix.New(2)
	require.NoError(t, err)

	require.NoError(t, m.AppendRow([]float64{1, 2}))
	before := m.RowsData()

	require.NoError(t, m.AppendRow([]float64{3, 4}))
	require.Equal(t, 2, m.Rows())

	r0, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, before[0], r0)

	r1, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, r1)
}

func TestAppendRowCopiesInput(t *testing.T) {
	m, err := matrix.New(2)
	require.NoError(t, err)

	row := []float64{5, 6}
	require.NoError(t, m.AppendRow(row))
	row[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestAppendRowDimensionMismatch(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}})
	before := m.Clone()

	for _, row := range [][]float64{{1}, {1, 2, 3}, nil} {
		err := m.AppendRow(row)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		require.Equal(t, 1, m.Rows())
	}
	require.True(t, m.Equal(before))
}

// TestAppendRowCapacityExceeded fills the matrix to capacity and checks that
// one more append fails without changing the row count.
func TestAppendRowCapacityExceeded(t *testing.T) {
	m, err := matrix.New(1, matrix.WithCapacity(3, 1))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.AppendRow([]float64{float64(i)}))
	}

	err = m.AppendRow([]float64{42})
	require.ErrorIs(t, err, matrix.ErrCapacityExceeded)
	require.Equal(t, 3, m.Rows())
}

func TestAppendRowDefaultCapacity(t *testing.T) {
	m, err := matrix.New(1)
	require.NoError(t, err)
	for i := 0; i < matrix.DefaultRowCapacity; i++ {
		require.NoError(t, m.AppendRow([]float64{1}))
	}
	require.ErrorIs(t, m.AppendRow([]float64{1}), matrix.ErrCapacityExceeded)
	require.Equal(t, matrix.DefaultRowCapacity, m.Rows())
}

// TestMismatchTakesPriorityOverCapacity pins the documented check order.
func TestMismatchTakesPriorityOverCapacity(t *testing.T) {
	m, err := matrix.New(2, matrix.WithCapacity(1, 2))
	require.NoError(t, err)
	require.NoError(t, m.AppendRow([]float64{1, 2}))

	require.ErrorIs(t, m.AppendRow([]float64{1}), matrix.ErrDimensionMismatch)
}

func TestAtSetOutOfRange(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidColumnIndex)

	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrInvalidColumnIndex)
	require.ErrorIs(t, m.Set(5, 0, 1), matrix.ErrInvalidRowIndex)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrInvalidRowIndex)
}

func TestSetGet(t *testing.T) {
	m := MustFromRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, m.Set(1, 2, 7.89))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone returns a deep copy in both directions.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}}, matrix.WithCapacity(4, 2))
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, 3))
	require.NoError(t, m.Set(1, 1, 9))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = clone.At(1, 1)
	require.Equal(t, 2.0, v)

	rc, cc := clone.Capacity()
	require.Equal(t, 4, rc)
	require.Equal(t, 2, cc)

	// appending to the clone must not leak into the original's buffer
	require.NoError(t, clone.AppendRow([]float64{7, 7}))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, clone.Rows())
}

func TestEqual(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}})
	b := MustFromRows(t, [][]float64{{1, 2}})
	c := MustFromRows(t, [][]float64{{1, 2}, {0, 0}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	require.NoError(t, b.Set(0, 1, 2.5))
	assert.False(t, a.Equal(b))
}

func TestFromRowsEmpty(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNilReceiver(t *testing.T) {
	var m *matrix.Matrix

	require.ErrorIs(t, m.AppendRow([]float64{1}), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Interchange(0, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Scale(0, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.AddScaledRow(0, 0, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.ToEchelon(), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.ToReducedEchelon(), matrix.ErrNilMatrix)
	require.Equal(t, matrix.NoPivot, m.PivotColumn(0))
	require.Nil(t, m.Clone())
}

// TestStringOutput checks the debugging dump format.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

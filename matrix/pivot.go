// SPDX-License-Identifier: MIT

package matrix

// NoPivot is returned by PivotColumn for a zero row or an invalid row index.
// It is distinct from every valid column index.
const NoPivot = -1

const (
	ctxRowZeros = "RowZeros"
	ctxColZeros = "ColZeros"
)

// PivotColumn returns the index of the leftmost nonzero entry of row.
// The comparison is exact (v != 0) and the scan is strictly left to right;
// no magnitude-based choice is ever made.
// Returns NoPivot when the row is all zeros or row is out of range.
// Complexity: O(cols).
func (m *Matrix) PivotColumn(row int) int {
	if m == nil || !m.validRow(row) {
		return NoPivot
	}
	for j, v := range m.rowSlice(row) {
		if v != 0 {
			return j
		}
	}

	return NoPivot
}

// RowZeros counts the exact zeros in row.
func (m *Matrix) RowZeros(row int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.validRow(row) {
		return 0, matrixErrorf(ctxRowZeros, row, 0, ErrInvalidRowIndex)
	}
	n := 0
	for _, v := range m.rowSlice(row) {
		if v == 0 {
			n++
		}
	}

	return n, nil
}

// ColZeros counts the exact zeros in col across the populated rows.
func (m *Matrix) ColZeros(col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if col < 0 || col >= m.cols {
		return 0, matrixErrorf(ctxColZeros, 0, col, ErrInvalidColumnIndex)
	}
	n := 0
	for i := 0; i < m.rows; i++ {
		if m.data[i*m.cols+col] == 0 {
			n++
		}
	}

	return n, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - elimination engine.
//
// Purpose:
//   - Reduce a matrix to row-echelon form (forward pass) and to reduced
//     row-echelon form (back-substitution + normalization) in place.
//   - Offer pure variants (Echelon, ReducedEchelon, Rank) that work on a clone
//     and never touch their input, so independent matrices can be reduced
//     concurrently without synchronization.
//
// Pivoting policy:
//   - The pivot of column i is the FIRST row at or below row i whose entry in
//     column i is nonzero (exact comparison). There is no max-magnitude
//     pivoting; the trace and the results depend on this choice.
//   - Pivot rows are always placed at row i. A column without a candidate is
//     skipped, so after a pivotless column the pivots need not be in strictly
//     increasing column order.
//   - Rows without a pivot (NoPivot) are skipped at every stage; rank-deficient
//     and rectangular inputs never fail and never divide by zero.

package matrix

import "fmt"

const (
	ctxToEchelon        = "ToEchelon"
	ctxToReducedEchelon = "ToReducedEchelon"
)

// engineErrorf tags a failed sub-operation with the engine stage.
func engineErrorf(stage string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", stage, err)
}

// ToEchelon runs the forward pass in place.
// MAIN DESCRIPTION:
//   - For every column i: find the first row i+offset (offset ≥ 0) with a
//     nonzero entry in column i, move it to row i, then clear column i in every
//     row below the original pivot position.
//
// Implementation:
//   - Stage 1: pivot search bounded by i+offset < Rows() before every access.
//   - Stage 2: Interchange(i, i+offset) when offset != 0.
//   - Stage 3: add -A[j][i]/A[i][i] × row i to row j for j in (i+offset, Rows()).
//
// Behavior highlights:
//   - Division happens only by a pivot already known to be nonzero.
//   - Near-zero (but nonzero) pivots are used as is.
//   - The eliminated cell A[j][i] is stored as exactly 0, so rounding residue
//     can never be picked up as a later pivot.
//
// Errors:
//   - ErrNilMatrix; a failed interchange is wrapped and returned.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1) (O(c) per operation while tracing).
func (m *Matrix) ToEchelon() error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.forwardEliminate(); err != nil {
		return engineErrorf(ctxToEchelon, err)
	}

	return nil
}

// ToReducedEchelon runs the forward pass, eliminates above every pivot from
// the bottom row up (rows whose entry in the pivot column is already 0 are not
// touched), and finally scales each pivot row so its pivot is exactly 1.
// All-zero rows are left untouched.
func (m *Matrix) ToReducedEchelon() error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.forwardEliminate(); err != nil {
		return engineErrorf(ctxToReducedEchelon, err)
	}
	m.backSubstitute()
	m.normalizePivots()

	return nil
}

// findPivotOffset returns the offset from row i of the first row whose entry in
// column col is nonzero, or (0, false) when rows i..Rows()-1 are all zero there.
func (m *Matrix) findPivotOffset(i, col int) (int, bool) {
	for offset := 0; i+offset < m.rows; offset++ {
		if m.data[(i+offset)*m.cols+col] != 0 {
			return offset, true
		}
	}

	return 0, false
}

func (m *Matrix) forwardEliminate() error {
	var (
		i, j, offset int
		found        bool
		pivot        float64
		err          error
	)
	for i = 0; i < m.cols; i++ {
		offset, found = m.findPivotOffset(i, i)
		if !found {
			continue // free column: no pivot in the remaining submatrix
		}
		if offset != 0 {
			if err = m.Interchange(i, i+offset); err != nil {
				return err
			}
		}
		pivot = m.data[i*m.cols+i]
		for j = i + offset + 1; j < m.rows; j++ {
			m.addScaled(i, j, -m.data[j*m.cols+i]/pivot, i)
		}
	}

	return nil
}

// skipPivotless is the named policy for rows with no pivot: they are zero rows
// and take no part in back-substitution or normalization.
func skipPivotless(col int) bool { return col == NoPivot }

func (m *Matrix) backSubstitute() {
	var (
		i, j, col int
		pivot, v  float64
	)
	for i = m.rows - 1; i > 0; i-- {
		col = m.PivotColumn(i)
		if skipPivotless(col) {
			continue
		}
		pivot = m.data[i*m.cols+col]
		for j = i - 1; j >= 0; j-- {
			v = m.data[j*m.cols+col]
			if v == 0 {
				continue
			}
			m.addScaled(i, j, -v/pivot, col)
		}
	}
}

func (m *Matrix) normalizePivots() {
	var i, col int
	for i = 0; i < m.rows; i++ {
		col = m.PivotColumn(i)
		if skipPivotless(col) {
			continue
		}
		// x*(1/x) can land one ulp away from 1; the pivot cell is pinned to 1.
		m.scale(i, 1/m.data[i*m.cols+col], col)
	}
}

// Echelon returns the row-echelon form of a clone of m; m is not modified.
func Echelon(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := m.Clone()
	if err := out.ToEchelon(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReducedEchelon returns the reduced row-echelon form of a clone of m; m is
// not modified.
func ReducedEchelon(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	out := m.Clone()
	if err := out.ToReducedEchelon(); err != nil {
		return nil, err
	}

	return out, nil
}

// Rank returns the number of rows with a pivot in the reduced row-echelon form
// of m. The installed hook (if any) is not invoked.
func Rank(m *Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	work := m.Clone()
	work.hook = nil
	if err := work.ToReducedEchelon(); err != nil {
		return 0, err
	}
	rank := 0
	for i := 0; i < work.rows; i++ {
		if !skipPivotless(work.PivotColumn(i)) {
			rank++
		}
	}

	return rank, nil
}

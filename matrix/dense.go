// SPDX-License-Identifier: MIT

// Package matrix - Matrix store (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Grow only by AppendRow; the column count is fixed at construction.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(1); AppendRow: amortized O(c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxAppendRow = "AppendRow"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps a sentinel with a uniform Matrix context and callsite indices.
// The sentinel is preserved via %w so callers can match it with errors.Is.
func matrixErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}

// Matrix is a dense row-major grid of float64 values with a fixed column count
// and a row count that only grows through AppendRow.
//   - rows,cols hold the populated extent.
//   - rowCap,colCap bound the extent (ErrCapacityExceeded beyond them).
//   - data is a flat buffer of length rows*cols in row-major order (offset = i*cols + j).
//   - hook observes row operations (nil ⇒ no tracing).
//
// A Matrix is exclusively owned by its caller; it performs no internal
// synchronization. Use Clone to hand an independent value to another goroutine.
type Matrix struct {
	rows, cols     int
	rowCap, colCap int
	data           []float64
	hook           RowOpHook
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty matrix with a fixed column count.
// MAIN DESCRIPTION:
//   - Initialize the store: set the column count, reset the row count to 0.
//
// Implementation:
//   - Stage 1: resolve options (capacity, hook).
//   - Stage 2: validate 0 < cols ≤ colCap.
//   - Stage 3: reserve backing storage for a modest number of rows.
//
// Errors:
//   - ErrBadShape when cols ≤ 0.
//   - ErrCapacityExceeded when cols > column capacity.
//
// Complexity:
//   - Time O(1) amortized, Space O(cols).
func New(cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if cols <= 0 {
		return nil, matrixErrorf(ctxNew, 0, cols, ErrBadShape)
	}
	if cols > o.colCap {
		return nil, matrixErrorf(ctxNew, 0, cols, ErrCapacityExceeded)
	}

	return &Matrix{
		rows:   0,
		cols:   cols,
		rowCap: o.rowCap,
		colCap: o.colCap,
		data:   make([]float64, 0, cols*min(o.rowCap, 8)),
		hook:   o.hook,
	}, nil
}

// FromRows builds a matrix by appending each row in order. The column count is
// taken from the first row; an empty input yields ErrBadShape.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxNew, 0, 0, ErrBadShape)
	}
	m, err := New(len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err = m.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AppendRow copies row into the next logical row and increments Rows().
// MAIN DESCRIPTION:
//   - The only way a matrix grows; the caller's slice is copied, not retained.
//
// Implementation:
//   - Stage 1: len(row) must equal Cols() (ErrDimensionMismatch).
//   - Stage 2: Rows()+1 must not exceed the row capacity (ErrCapacityExceeded).
//   - Stage 3: append values and bump the row count.
//
// Behavior highlights:
//   - No partial mutation on failure: both checks run before any write.
//
// Complexity:
//   - Time O(cols) amortized, Space O(cols).
func (m *Matrix) AppendRow(row []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(row) != m.cols {
		return matrixErrorf(ctxAppendRow, m.rows, len(row), ErrDimensionMismatch)
	}
	if m.rows+1 > m.rowCap {
		return matrixErrorf(ctxAppendRow, m.rows, len(row), ErrCapacityExceeded)
	}
	m.data = append(m.data, row...)
	m.rows++

	return nil
}

// Rows returns the populated row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the fixed column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Capacity reports the configured row and column bounds.
func (m *Matrix) Capacity() (rows, cols int) { return m.rowCap, m.colCap }

// SetRowOpHook replaces the row-operation observer; nil disables tracing.
func (m *Matrix) SetRowOpHook(hook RowOpHook) {
	if m != nil {
		m.hook = hook
	}
}

// indexOf bounds-checks (row,col) and returns the flat offset.
// Row violations take priority over column violations.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrInvalidRowIndex
	}
	if col < 0 || col >= m.cols {
		return 0, ErrInvalidColumnIndex
	}

	return row*m.cols + col, nil
}

// validRow reports whether row addresses a populated row.
func (m *Matrix) validRow(row int) bool { return row >= 0 && row < m.rows }

// rowSlice returns the live backing slice of a (validated) row.
func (m *Matrix) rowSlice(row int) []float64 {
	base := row * m.cols

	return m.data[base : base+m.cols : base+m.cols]
}

// At returns the value at (row, col).
// Errors: ErrInvalidRowIndex / ErrInvalidColumnIndex, wrapped with coordinates.
func (m *Matrix) At(row, col int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). It does not emit a row-operation event.
func (m *Matrix) Set(row, col int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of the given row.
func (m *Matrix) Row(row int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.validRow(row) {
		return nil, matrixErrorf(ctxRow, row, 0, ErrInvalidRowIndex)
	}
	out := make([]float64, m.cols)
	copy(out, m.rowSlice(row))

	return out, nil
}

// RowsData returns a deep copy of the populated extent as a slice of rows.
func (m *Matrix) RowsData() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.rowSlice(i))
	}

	return out
}

// Clone returns an independent value copy: data, counts, capacity and hook.
// Mutating either copy never affects the other.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data), cap(m.data))
	copy(cp, m.data)

	return &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowCap: m.rowCap,
		colCap: m.colCap,
		data:   cp,
		hook:   m.hook,
	}
}

// Equal reports whether both matrices have the same shape and bit-identical
// values (NaN compares equal to an identical NaN payload; -0 differs from +0).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if math.Float64bits(m.data[i]) != math.Float64bits(other.data[i]) {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated %g values, e.g. "[1, 2]\n".
// Intended for debugging; see package render for the fixed-width layout.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

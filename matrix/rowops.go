// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - Provide the three atomic mutators the elimination engine is built on:
//     Interchange, Scale and AddScaledRow.
//   - Validate every row index before touching data (no partial mutation).
//   - Report each successful mutation to the row-operation hook.

package matrix

const (
	ctxInterchange  = "Interchange"
	ctxScale        = "Scale"
	ctxAddScaledRow = "AddScaledRow"
)

// Interchange swaps rows a and b element by element.
// MAIN DESCRIPTION:
//   - a == b is valid and leaves the contents bit-identical.
//
// Implementation:
//   - Stage 1: validate both indices (ErrInvalidRowIndex).
//   - Stage 2: swap cells when a != b.
//   - Stage 3: emit OpInterchange.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Matrix) Interchange(a, b int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.validRow(a) || !m.validRow(b) {
		return matrixErrorf(ctxInterchange, a, b, ErrInvalidRowIndex)
	}
	if a != b {
		ra, rb := m.rowSlice(a), m.rowSlice(b)
		for i := range ra {
			ra[i], rb[i] = rb[i], ra[i]
		}
	}
	m.emit(Event{Kind: OpInterchange, Row: a, Other: b})

	return nil
}

// Scale multiplies every element of row by factor in place.
// factor == 0 is legal and produces a zero row.
// Complexity: O(cols).
func (m *Matrix) Scale(row int, factor float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.validRow(row) {
		return matrixErrorf(ctxScale, row, row, ErrInvalidRowIndex)
	}
	m.scale(row, factor, noSnap)

	return nil
}

// noSnap disables the exact-value snap in scale and addScaled.
const noSnap = -1

// scale multiplies a validated row; when unitCol != noSnap that cell is set to
// exactly 1 before the event is emitted.
func (m *Matrix) scale(row int, factor float64, unitCol int) {
	r := m.rowSlice(row)
	for i := range r {
		r[i] *= factor
	}
	if unitCol != noSnap {
		r[unitCol] = 1
	}
	m.emit(Event{Kind: OpScale, Row: row, Other: row, Factor: factor})
}

// AddScaledRow performs dst[i] += src[i]*weight for every column.
// MAIN DESCRIPTION:
//   - Used both below a pivot (forward pass) and above it (back-substitution).
//
// Implementation:
//   - Stage 1: validate src and dst (ErrInvalidRowIndex).
//   - Stage 2: compute each contribution src[i]*weight and accumulate into dst.
//   - Stage 3: emit OpAddScaled with the contributions when a hook is installed.
//
// Behavior highlights:
//   - src == dst is allowed and scales the row by (1+weight).
//
// Complexity:
//   - Time O(cols), Space O(cols) only while tracing.
func (m *Matrix) AddScaledRow(src, dst int, weight float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.validRow(src) || !m.validRow(dst) {
		return matrixErrorf(ctxAddScaledRow, src, dst, ErrInvalidRowIndex)
	}
	m.addScaled(src, dst, weight, noSnap)

	return nil
}

// addScaled accumulates weight×src into a validated dst; when zeroCol != noSnap
// that cell of dst is set to exactly 0 before the event is emitted.
func (m *Matrix) addScaled(src, dst int, weight float64, zeroCol int) {
	rs, rd := m.rowSlice(src), m.rowSlice(dst)
	var contrib []float64
	if m.hook != nil {
		contrib = make([]float64, m.cols)
	}
	var c float64
	for i := range rd {
		c = float64(rs[i] * weight) // rounded product, never fused into the add
		rd[i] += c
		if contrib != nil {
			contrib[i] = c
		}
	}
	if zeroCol != noSnap {
		rd[zeroCol] = 0
	}
	m.emit(Event{Kind: OpAddScaled, Row: dst, Other: src, Factor: weight, Contribution: contrib})
}

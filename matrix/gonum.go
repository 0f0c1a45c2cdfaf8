// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum matrix into a new Matrix, row by row, so the
// usual capacity and shape checks apply.
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	m, err := New(c, opts...)
	if err != nil {
		return nil, err
	}
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, src)
		if err = m.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ToGonum returns a *mat.Dense holding a copy of the populated extent.
// An empty matrix (zero rows) yields nil, since gonum forbids zero dimensions.
func (m *Matrix) ToGonum() *mat.Dense {
	if m == nil || m.rows == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.rows, m.cols, data)
}

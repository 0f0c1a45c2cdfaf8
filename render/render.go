// SPDX-License-Identifier: MIT

// Package render prints matrices in the fixed-width console layout and turns
// row-operation events into a human-readable trace.
//
// Layout (digits = 2):
//
//	[ 2x2 ]   [ 0]      [ 1]
//	[ 0]       1 |       2 |
//	[ 1]       0 |      -2 |
//
// The header carries the row/column counts and column indices; every row is
// prefixed by its index and each value is printed with %8.<digits>g.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/echelon/matrix"
)

// DefaultDigits is the number of significant digits printed per value.
const DefaultDigits = 2

// ErrInvalidDigits is returned for a non-positive digit count.
var ErrInvalidDigits = errors.New("render: digits must be > 0")

// cellFormat returns the per-value verb for the given precision.
func cellFormat(digits int) string { return fmt.Sprintf("%%8.%dg |", digits) }

// Matrix writes m to w in the fixed-width layout.
func Matrix(w io.Writer, m *matrix.Matrix, digits int) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if digits <= 0 {
		return ErrInvalidDigits
	}
	var b strings.Builder
	writeMatrix(&b, m, cellFormat(digits))
	_, err := io.WriteString(w, b.String())

	return err
}

func writeMatrix(b *strings.Builder, m *matrix.Matrix, cell string) {
	rows, cols := m.Shape()
	fmt.Fprintf(b, "[%2dx%-2d]", rows, cols)
	for j := 0; j < cols; j++ {
		fmt.Fprintf(b, "   [%2d]   ", j)
	}
	b.WriteByte('\n')

	var v float64
	for i := 0; i < rows; i++ {
		fmt.Fprintf(b, "[%2d]", i)
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			fmt.Fprintf(b, cell, v)
		}
		b.WriteByte('\n')
	}
}

// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/echelon/matrix"
)

// Document is the YAML shape accepted by YAML:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
type Document struct {
	Rows [][]float64 `yaml:"rows"`
}

// YAML decodes a Document from r and builds the matrix row by row.
// Non-finite values (.nan, .inf) yield ErrMalformedInput, an empty "rows" list
// yields matrix.ErrBadShape and ragged rows yield matrix.ErrDimensionMismatch.
func YAML(r io.Reader, opts ...matrix.Option) (*matrix.Matrix, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml document: %w", ErrShortInput)
		}

		return nil, fmt.Errorf("yaml document: %v: %w", err, ErrMalformedInput)
	}

	for i, row := range doc.Rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("yaml value %d,%d: %w", i, j, ErrMalformedInput)
			}
		}
	}

	return matrix.FromRows(doc.Rows, opts...)
}

// SPDX-License-Identifier: MIT

// Package scan reads matrices from textual input.
//
// Two formats are supported:
//
//	Text: "<rows> <cols>" followed by rows*cols numbers in row-major order,
//	      separated by any whitespace (line breaks carry no meaning).
//	YAML: a document with a "rows" sequence of numeric sequences.
//
// Both build the matrix with matrix.New and matrix.(*Matrix).AppendRow, so the
// store's capacity and dimension checks apply unchanged.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/echelon/matrix"
)

var (
	// ErrMalformedInput reports a token that is not a valid count or number.
	ErrMalformedInput = errors.New("scan: malformed input")

	// ErrShortInput reports input that ended before all values were read.
	ErrShortInput = errors.New("scan: unexpected end of input")
)

// tokenReader yields whitespace-separated tokens and tracks their ordinal.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("scan: reading %s: %w", what, err)
		}

		return "", fmt.Errorf("token %d (%s): %w", t.pos+1, what, ErrShortInput)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenReader) count(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("token %d (%s) %q: %w", t.pos, what, tok, ErrMalformedInput)
	}

	return n, nil
}

func (t *tokenReader) float(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("token %d (%s) %q: %w", t.pos, what, tok, ErrMalformedInput)
	}

	return v, nil
}

// Text reads "<rows> <cols> v00 v01 ..." from r.
// MAIN DESCRIPTION:
//   - Reads the two counts, initializes the store with cols, then appends one
//     row at a time.
//
// Errors:
//   - ErrMalformedInput for a bad count or a number that is not finite
//     (NaN and ±Inf are rejected), ErrShortInput when the
//     stream ends early (both carry the 1-based token position).
//   - matrix sentinels from New/AppendRow (e.g. ErrCapacityExceeded,
//     ErrBadShape for zero columns).
func Text(r io.Reader, opts ...matrix.Option) (*matrix.Matrix, error) {
	tr := newTokenReader(r)
	rows, err := tr.count("row count")
	if err != nil {
		return nil, err
	}
	cols, err := tr.count("column count")
	if err != nil {
		return nil, err
	}
	m, err := matrix.New(cols, opts...)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if buf[j], err = tr.float(fmt.Sprintf("value %d,%d", i, j)); err != nil {
				return nil, err
			}
		}
		if err = m.AppendRow(buf); err != nil {
			return nil, err
		}
	}

	return m, nil
}

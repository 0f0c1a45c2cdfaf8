// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical Option
// parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Detection sites wrap with method context and indices, e.g.
// "Matrix.Interchange(3,0): matrix: invalid row index"; callers still match
// the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil receiver -> index -> dimension -> capacity.

var (
	// ErrBadShape is returned when a requested column count is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates a row whose length disagrees with the
	// matrix column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrCapacityExceeded indicates that an append (or a construction) would
	// grow the matrix past its configured row or column capacity.
	ErrCapacityExceeded = errors.New("matrix: capacity exceeded")

	// ErrInvalidRowIndex indicates that an operation addressed a row outside
	// the populated extent [0, Rows()).
	ErrInvalidRowIndex = errors.New("matrix: invalid row index")

	// ErrInvalidColumnIndex indicates that an operation addressed a column
	// outside [0, Cols()).
	ErrInvalidColumnIndex = errors.New("matrix: invalid column index")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

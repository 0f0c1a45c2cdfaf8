// Package matrix implements dense row reduction: a growable row-major
// matrix store, the three elementary row operations, first-nonzero pivot
// search and an elimination engine producing row-echelon and reduced
// row-echelon form.
//
// The matrix package provides:
//
//   - Matrix: fixed column count, rows appended one at a time up to a
//     configurable capacity (WithCapacity; 64×64 by default).
//   - Interchange, Scale, AddScaledRow: bounds-checked, all-or-nothing
//     mutators that report each change to an optional RowOpHook.
//   - PivotColumn: leftmost nonzero entry of a row, or NoPivot.
//   - ToEchelon / ToReducedEchelon (in place) and Echelon / ReducedEchelon /
//     Rank (on a clone, safe for concurrent use across matrices).
//
// Pivoting is by search, not by magnitude: the first nonzero entry wins.
// Rows without a pivot are skipped, so singular and rectangular inputs are
// reduced without error. No stability measures beyond that are taken.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrCapacityExceeded,
// ErrInvalidRowIndex, ...) wrapped with call-site context; match them with
// errors.Is.
package matrix

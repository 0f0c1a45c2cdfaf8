// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowCapacity bounds the number of rows AppendRow accepts.
	DefaultRowCapacity = 64

	// DefaultColCapacity bounds the column count accepted by New.
	DefaultColCapacity = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: rows and cols must be > 0"
	panicHookNil         = "matrix: WithRowOpHook: hook must not be nil"
)

// RowOpHook observes every successful row operation. It receives the event
// and the matrix state immediately after the mutation. Hooks must not mutate
// the matrix they are handed.
type RowOpHook func(ev Event, m *Matrix)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rowCap int       // DefaultRowCapacity
	colCap int       // DefaultColCapacity
	hook   RowOpHook // nil ⇒ tracing disabled
}

// WithCapacity sets the maximum populated extent of the matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (panic otherwise).
//   - Stage 2: return a setter that writes both bounds.
//
// Behavior highlights:
//   - Replaces the fixed ROWMAX×COLMAX buffer with a per-matrix bound;
//     overflow detection (ErrCapacityExceeded) is unchanged.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacity(rows, cols int) Option {
	if rows <= 0 || cols <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) {
		o.rowCap = rows
		o.colCap = cols
	}
}

// WithRowOpHook installs an observer for Interchange, Scale and AddScaledRow.
// The hook is a pure side channel: it never alters computed values.
func WithRowOpHook(hook RowOpHook) Option {
	if hook == nil {
		panic(panicHookNil)
	}

	return func(o *Options) { o.hook = hook }
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{
		rowCap: DefaultRowCapacity,
		colCap: DefaultColCapacity,
	}
}

// gatherOptions applies setters in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

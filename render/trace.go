// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/echelon/matrix"
)

// Tracer writes one description per row operation followed by the matrix
// state after it. Install it with matrix.WithRowOpHook(t.Hook) or
// (*matrix.Matrix).SetRowOpHook(t.Hook).
//
//	>> R0 <---> R1          interchange
//	>> R1 *=     -0.5       scale
//	>> R1 += -3 * R0        add-scaled, followed by the per-column contribution:
//	(??) +      -3        -6  to row 1
//
// The first write error is kept and reported by Err; later events are dropped.
type Tracer struct {
	w      io.Writer
	digits int
	err    error
}

// NewTracer returns a Tracer writing to w; digits ≤ 0 selects DefaultDigits.
func NewTracer(w io.Writer, digits int) *Tracer {
	if digits <= 0 {
		digits = DefaultDigits
	}

	return &Tracer{w: w, digits: digits}
}

// Hook is a matrix.RowOpHook.
func (t *Tracer) Hook(ev matrix.Event, m *matrix.Matrix) {
	if t.err != nil {
		return
	}
	var b strings.Builder
	switch ev.Kind {
	case matrix.OpInterchange:
		fmt.Fprintf(&b, ">> R%d <---> R%d\n", ev.Row, ev.Other)
	case matrix.OpScale:
		fmt.Fprintf(&b, ">> R%d *= %8.*g\n", ev.Row, t.digits, ev.Factor)
	case matrix.OpAddScaled:
		fmt.Fprintf(&b, ">> R%d += %.6g * R%d\n", ev.Row, ev.Factor, ev.Other)
		b.WriteString("(??) +")
		for _, c := range ev.Contribution {
			fmt.Fprintf(&b, "%8.*g  ", t.digits, c)
		}
		fmt.Fprintf(&b, "to row %d\n", ev.Row)
	default:
		fmt.Fprintf(&b, ">> %s\n", ev.Kind)
	}
	writeMatrix(&b, m, cellFormat(t.digits))
	_, t.err = io.WriteString(t.w, b.String())
}

// Err returns the first write error, if any.
func (t *Tracer) Err() error { return t.err }

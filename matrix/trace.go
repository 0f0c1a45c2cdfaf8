// SPDX-License-Identifier: MIT

package matrix

// OpKind identifies the row operation carried by an Event.
type OpKind int

const (
	// OpInterchange swaps rows Row and Other.
	OpInterchange OpKind = iota
	// OpScale multiplies row Row by Factor.
	OpScale
	// OpAddScaled adds Factor × row Other to row Row.
	OpAddScaled
)

// String returns the stable lowercase name of the operation.
func (k OpKind) String() string {
	switch k {
	case OpInterchange:
		return "interchange"
	case OpScale:
		return "scale"
	case OpAddScaled:
		return "add-scaled"
	default:
		return "unknown"
	}
}

// Event records one row operation for diagnostics. It is never persisted;
// hooks render or collect it.
//
//	Interchange: Row ↔ Other, Factor unused.
//	Scale:       Row *= Factor.
//	AddScaled:   Row += Factor × Other; Contribution[i] = Other[i]*Factor.
type Event struct {
	Kind         OpKind
	Row          int
	Other        int
	Factor       float64
	Contribution []float64
}

// emit forwards ev to the installed hook, if any.
func (m *Matrix) emit(ev Event) {
	if m.hook != nil {
		m.hook(ev, m)
	}
}

// Recorder collects events in order; its Hook method is a RowOpHook.
// Useful in tests and for callers that post-process a trace.
type Recorder struct {
	Events []Event
}

// Hook appends a copy of ev.
func (r *Recorder) Hook(ev Event, _ *Matrix) {
	if ev.Contribution != nil {
		ev.Contribution = append([]float64(nil), ev.Contribution...)
	}
	r.Events = append(r.Events, ev)
}

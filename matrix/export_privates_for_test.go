// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Options and the snapping kernels
//
// Purpose:
//   - Expose the resolved Options and the unexported scale/addScaled kernels to
//     matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - The file name ends in _test.go, so it is compiled only by `go test`.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityInvalid_TestOnly = panicCapacityInvalid
	PanicHookNil_TestOnly         = panicHookNil
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	RowCap  int
	ColCap  int
	HasHook bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{RowCap: o.rowCap, ColCap: o.colCap, HasHook: o.hook != nil}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// Scale_TestOnly forwards to the private scale kernel (indices must be valid).
func (m *Matrix) Scale_TestOnly(row int, factor float64, unitCol int) {
	m.scale(row, factor, unitCol)
}

// AddScaled_TestOnly forwards to the private addScaled kernel (indices must be valid).
func (m *Matrix) AddScaled_TestOnly(src, dst int, weight float64, zeroCol int) {
	m.addScaled(src, dst, weight, zeroCol)
}

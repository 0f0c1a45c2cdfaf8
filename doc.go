// Package echelon is a small toolkit for Gaussian elimination on dense
// float64 matrices, with every elementary row operation observable as it
// happens.
//
// 🚀 What is echelon?
//
//	A dependency-light library and command that brings together:
//		• Matrix store: row-major buffer, fixed column count, bounded growth
//		• Row operations: interchange, scale, add-scaled (each traceable)
//		• Pivot search: leftmost nonzero entry per row
//		• Elimination: row-echelon and reduced row-echelon forms, rank
//		• Rendering: fixed-width matrix dump and step-by-step trace
//
// ✨ Why choose echelon?
//
//   - Predictable - first-nonzero pivoting, fixed loop orders, no hidden state
//   - Observable - install a hook (WithRowOpHook) and see each step
//   - Safe surface - accessors return errors instead of panicking
//   - Interoperable - convert to and from gonum's mat.Dense
//
// Everything is organized under a handful of packages:
//
//	matrix/       - Matrix store, row operations, pivot search, elimination engine
//	render/       - fixed-width rendering and the textual trace observer
//	scan/         - whitespace text and YAML matrix readers
//	config/       - YAML run configuration with defaults and validation
//	internal/cli/ - the cobra command behind cmd/echelon
//
// Quick example:
//
//	2 2
//	1 2
//	3 4
//
//	reduces to the 2×2 identity after one add-scaled step below the pivot,
//	one above it and two normalizations.
//
//	go install github.com/katalvlaran/echelon/cmd/echelon@latest
package echelon

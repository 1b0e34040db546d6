// Package engine defines the contracts the element-graph core consumes from
// the underlying media-processing engine: element creation and attachment,
// pairwise and filtered linking, capability parsing, property and signal
// access, state changes, and the blocking dispatch loop.
//
// The production implementation lives in internal/gstengine and wraps
// GStreamer. Tests use the scriptable fake in engine/enginetest, so the core
// builds and runs without cgo or a GStreamer installation.
package engine

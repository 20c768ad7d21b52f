// Package journal persists dispatch outcomes to SQLite for test
// diagnostics.
//
// The journal is pure telemetry: the engine never reads it back during
// dispatch, and a write failure is logged by the Face rather than surfaced
// to the caller. Open it at ":memory:" (the default everywhere in this
// repo) for a journal that lives and dies with the test, or at a file path
// when a run's trace should survive for post-mortem inspection.
//
// Reads are ordered by seq ascending, so a journal read back after a run
// reproduces the exact dispatch order.
package journal

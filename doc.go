// Package mockface simulates a named-data network endpoint entirely in
// memory so client code can be exercised without a socket or a remote
// forwarder.
//
// ARCHITECTURE:
//
// Two tables feed one dispatch routine. A response table maps exact name
// URIs to canned Data packets; a registry holds prefix registrations with
// handler callbacks. Expressing an Interest consults the response table
// first, then scans the registry for a matching prefix registration, and
// otherwise reports the Interest as unanswered via telemetry only.
//
// Dispatch is synchronous and deterministic: the outcome is fully resolved
// before ExpressInterest returns, and a canned response always preempts any
// handler that would also match. The engine is built for predictable test
// fixtures, not throughput.
//
// MATCHING:
//
// The registry is scanned in ascending registration-id (insertion) order
// and the first satisfying registration wins. There is deliberately no
// longest-prefix tie-break; overlapping registrations resolve by insertion
// order, matching the behavior client code observes against the engine this
// mock stands in for.
//
// THREADING:
//
// The engine is designed for single-threaded use: issue Interests and
// mutate tables from one goroutine, the same contract a real forwarder
// face imposes. A single mutex nonetheless serializes table mutation and
// the matcher's read pass, so concurrent test callers do not corrupt the
// tables. Handlers are invoked outside that mutex and may safely call back
// into the Face.
package mockface

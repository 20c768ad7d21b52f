package mockface

import "sync/atomic"

// counter is a monotonic id source. Each Face owns its own counters —
// registration ids, pending-interest ids, and the dispatch sequence each
// draw from a separate instance, so independent Faces in concurrent tests
// never share state.
//
// Values start above zero: the first next() returns 1. Ids are never
// reused, even after the entry they identified is removed.
type counter struct {
	last atomic.Int64
}

// next returns the next id and advances the counter.
func (c *counter) next() int64 {
	return c.last.Add(1)
}

// current returns the most recently issued id without advancing.
func (c *counter) current() int64 {
	return c.last.Load()
}

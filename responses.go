package mockface

import "github.com/roach88/mockface/ndn"

// responseTable maps exact name URIs to canned Data packets.
//
// Lookup is exact-string only — no prefix semantics apply here; those live
// in the registry matcher. Entries are keyed by the Name's canonical URI
// form, last write wins, and removal of an absent entry is a no-op.
//
// Not safe for concurrent use on its own; the owning Face serializes
// access.
type responseTable struct {
	entries map[string]ndn.Data
}

func newResponseTable() *responseTable {
	return &responseTable{entries: make(map[string]ndn.Data)}
}

// put inserts or overwrites the entry for name.
func (t *responseTable) put(name ndn.Name, data ndn.Data) {
	t.entries[name.URI()] = data
}

// remove deletes the entry for name if present.
func (t *responseTable) remove(name ndn.Name) {
	delete(t.entries, name.URI())
}

// lookup returns the canned response for name, if any. Pure read.
func (t *responseTable) lookup(name ndn.Name) (ndn.Data, bool) {
	data, ok := t.entries[name.URI()]
	return data, ok
}

func (t *responseTable) len() int {
	return len(t.entries)
}

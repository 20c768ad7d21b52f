package mockface

import "github.com/roach88/mockface/ndn"

// findMatch scans registrations in the order given (the registry supplies
// ascending-id, i.e. insertion, order) and returns the first registration
// that matches the Interest name.
//
// A registration matches when either:
//
//	(a) its ChildInherit flag is set and its prefix is a hierarchical
//	    prefix of the name (including the name itself), or
//	(b) its prefix equals the name exactly, regardless of flags.
//
// The first satisfying registration wins. Ties between overlapping
// registrations resolve by insertion order, never by prefix length — there
// is deliberately no longest-prefix upgrade, because the engine this mock
// stands in for resolves ties the same way.
func findMatch(name ndn.Name, regs []*registration) (*registration, bool) {
	for _, reg := range regs {
		if reg.flags.ChildInherit && reg.prefix.IsPrefixOf(name) {
			return reg, true
		}
		if reg.prefix.Equal(name) {
			return reg, true
		}
	}
	return nil, false
}

package mockface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mockface/ndn"
)

// nopHandler is a do-nothing handler for registry fixtures.
var nopHandler = InterestHandlerFunc(func(ndn.Name, ndn.Interest, DeliverySink, int64) {})

func TestFindMatch_ChildInherit(t *testing.T) {
	r := newRegistry()
	id := r.register(ndn.MustParseName("/a"), nopHandler, ndn.ForwardingFlags{ChildInherit: true})

	testCases := []struct {
		name string
		uri  string
		want bool
	}{
		{"exact prefix", "/a", true},
		{"direct child", "/a/b", true},
		{"deep descendant", "/a/b/c", true},
		{"component boundary", "/ab", false},
		{"disjoint", "/z", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, ok := findMatch(ndn.MustParseName(tc.uri), r.ordered())
			assert.Equal(t, tc.want, ok)
			if ok {
				assert.Equal(t, id, reg.id)
			}
		})
	}
}

func TestFindMatch_ExactOnlyWithoutChildInherit(t *testing.T) {
	r := newRegistry()
	id := r.register(ndn.MustParseName("/a/b"), nopHandler, ndn.ForwardingFlags{})

	reg, ok := findMatch(ndn.MustParseName("/a/b"), r.ordered())
	require.True(t, ok, "exact name should match regardless of flags")
	assert.Equal(t, id, reg.id)

	_, ok = findMatch(ndn.MustParseName("/a/b/c"), r.ordered())
	assert.False(t, ok, "descendant should not match without ChildInherit")

	_, ok = findMatch(ndn.MustParseName("/a"), r.ordered())
	assert.False(t, ok, "parent should never match")
}

func TestFindMatch_NoRegistrations(t *testing.T) {
	_, ok := findMatch(ndn.MustParseName("/a"), nil)
	assert.False(t, ok)
}

func TestFindMatch_FirstMatchWinsInInsertionOrder(t *testing.T) {
	// Both registrations match "/a/b". Insertion order decides: the
	// earlier-registered broad prefix wins over the later exact one, even
	// though the exact one is more specific.
	r := newRegistry()
	broad := r.register(ndn.MustParseName("/a"), nopHandler, ndn.ForwardingFlags{ChildInherit: true})
	exact := r.register(ndn.MustParseName("/a/b"), nopHandler, ndn.ForwardingFlags{})

	reg, ok := findMatch(ndn.MustParseName("/a/b"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, broad, reg.id, "insertion order decides, not specificity")

	// Each registration remains independently reachable.
	r.unregister(broad)
	reg, ok = findMatch(ndn.MustParseName("/a/b"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, exact, reg.id)
}

func TestFindMatch_RegistrationOrderReversed(t *testing.T) {
	// Same two registrations in the opposite order: now the exact-only
	// registration is first and wins for "/a/b".
	r := newRegistry()
	exact := r.register(ndn.MustParseName("/a/b"), nopHandler, ndn.ForwardingFlags{})
	broad := r.register(ndn.MustParseName("/a"), nopHandler, ndn.ForwardingFlags{ChildInherit: true})

	reg, ok := findMatch(ndn.MustParseName("/a/b"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, exact, reg.id)

	// The broad registration still answers names only it covers.
	reg, ok = findMatch(ndn.MustParseName("/a/c"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, broad, reg.id)
}

func TestFindMatch_SharedPrefixRegistrations(t *testing.T) {
	r := newRegistry()
	first := r.register(ndn.MustParseName("/svc"), nopHandler, ndn.DefaultForwardingFlags())
	second := r.register(ndn.MustParseName("/svc"), nopHandler, ndn.DefaultForwardingFlags())
	require.NotEqual(t, first, second)

	reg, ok := findMatch(ndn.MustParseName("/svc/op"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, first, reg.id)

	r.unregister(first)
	reg, ok = findMatch(ndn.MustParseName("/svc/op"), r.ordered())
	require.True(t, ok)
	assert.Equal(t, second, reg.id, "removing one shared-prefix registration must not affect the other")
}

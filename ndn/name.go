package ndn

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name is a hierarchical identifier for a piece of requestable data: an
// ordered sequence of opaque path components.
//
// Names are immutable. All "mutating" operations return a new Name.
// The zero value is the root name "/" with no components.
type Name struct {
	components []string
}

// ParseName builds a Name from its canonical URI form, e.g. "/ndn/ping".
//
// An optional "ndn:" scheme prefix is accepted and stripped. The remainder
// must begin with "/". Empty components (from doubled or trailing slashes)
// are dropped, matching how the NDN URI scheme treats them. Each component
// is NFC-normalized.
func ParseName(uri string) (Name, error) {
	s := strings.TrimPrefix(uri, "ndn:")
	if s == "" || s[0] != '/' {
		return Name{}, fmt.Errorf("name %q: must begin with %q", uri, "/")
	}

	var components []string
	for _, c := range strings.Split(s, "/") {
		if c == "" {
			continue
		}
		components = append(components, norm.NFC.String(c))
	}
	return Name{components: components}, nil
}

// MustParseName is ParseName for known-good literals in tests and fixtures.
// Panics on malformed input.
func MustParseName(uri string) Name {
	n, err := ParseName(uri)
	if err != nil {
		panic(err)
	}
	return n
}

// NameOf builds a Name from individual components. Components are
// NFC-normalized; empty components are rejected.
func NameOf(components ...string) (Name, error) {
	out := make([]string, 0, len(components))
	for i, c := range components {
		if c == "" {
			return Name{}, fmt.Errorf("name component %d is empty", i)
		}
		out = append(out, norm.NFC.String(c))
	}
	return Name{components: out}, nil
}

// Size returns the number of components.
func (n Name) Size() int {
	return len(n.components)
}

// At returns the component at index i.
func (n Name) At(i int) string {
	return n.components[i]
}

// Components returns a copy of the component sequence.
func (n Name) Components() []string {
	out := make([]string, len(n.components))
	copy(out, n.components)
	return out
}

// Append returns a new Name with the given components added. The receiver
// is unchanged. Components are NFC-normalized.
func (n Name) Append(components ...string) Name {
	out := make([]string, 0, len(n.components)+len(components))
	out = append(out, n.components...)
	for _, c := range components {
		out = append(out, norm.NFC.String(c))
	}
	return Name{components: out}
}

// Equal reports whether two names have identical component sequences.
func (n Name) Equal(other Name) bool {
	if len(n.components) != len(other.components) {
		return false
	}
	for i, c := range n.components {
		if other.components[i] != c {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether n is a hierarchical prefix of other.
//
// The relation is component-wise, not textual: "/a/b" is a prefix of
// "/a/b/c" but not of "/a/bc". It is reflexive (every name is a prefix of
// itself) and transitive.
func (n Name) IsPrefixOf(other Name) bool {
	if len(n.components) > len(other.components) {
		return false
	}
	for i, c := range n.components {
		if other.components[i] != c {
			return false
		}
	}
	return true
}

// URI returns the canonical string form, e.g. "/ndn/ping". The root name
// renders as "/". This form is the exact-match key for the response table.
func (n Name) URI() string {
	if len(n.components) == 0 {
		return "/"
	}
	return "/" + strings.Join(n.components, "/")
}

// String implements fmt.Stringer as the canonical URI form.
func (n Name) String() string {
	return n.URI()
}

package ndn

import "time"

// DefaultInterestLifetime is applied to Interests built without a template.
const DefaultInterestLifetime = 4 * time.Second

// Interest is an outbound request for data matching a Name.
//
// Only the selector fields the mock engine consults are modeled; wire-level
// fields (nonce, signature) belong to the excluded encoding layer.
type Interest struct {
	name        Name
	lifetime    time.Duration
	mustBeFresh bool
}

// InterestTemplate carries selector fields to copy onto a new Interest,
// mirroring the template form of express-interest calls.
type InterestTemplate struct {
	Lifetime    time.Duration
	MustBeFresh bool
}

// NewInterest builds an Interest for name with the default lifetime.
func NewInterest(name Name) Interest {
	return Interest{name: name, lifetime: DefaultInterestLifetime}
}

// NewInterestFromTemplate builds an Interest for name, copying selector
// fields from tmpl. A nil template yields NewInterest(name).
func NewInterestFromTemplate(name Name, tmpl *InterestTemplate) Interest {
	if tmpl == nil {
		return NewInterest(name)
	}
	lifetime := tmpl.Lifetime
	if lifetime == 0 {
		lifetime = DefaultInterestLifetime
	}
	return Interest{name: name, lifetime: lifetime, mustBeFresh: tmpl.MustBeFresh}
}

// Name returns the Interest's name.
func (i Interest) Name() Name { return i.name }

// Lifetime returns how long the Interest would remain pending on a real
// network before timing out. The mock engine resolves synchronously and
// never ticks this down; it is carried for fixture fidelity.
func (i Interest) Lifetime() time.Duration { return i.lifetime }

// MustBeFresh reports the freshness selector.
func (i Interest) MustBeFresh() bool { return i.mustBeFresh }

// WithLifetime returns a copy with the given lifetime.
func (i Interest) WithLifetime(d time.Duration) Interest {
	i.lifetime = d
	return i
}

// WithMustBeFresh returns a copy with the freshness selector set.
func (i Interest) WithMustBeFresh(fresh bool) Interest {
	i.mustBeFresh = fresh
	return i
}

// Data is a payload answering an Interest.
type Data struct {
	name      Name
	content   []byte
	freshness time.Duration
}

// NewData builds a Data packet. The content slice is copied so later caller
// mutation cannot alter a canned response already in a table.
func NewData(name Name, content []byte) Data {
	c := make([]byte, len(content))
	copy(c, content)
	return Data{name: name, content: c}
}

// Name returns the Data's name.
func (d Data) Name() Name { return d.name }

// Content returns the payload bytes. Callers must not modify the returned
// slice; take a copy before editing.
func (d Data) Content() []byte { return d.content }

// Freshness returns the freshness period, zero if unset.
func (d Data) Freshness() time.Duration { return d.freshness }

// WithFreshness returns a copy with the freshness period set.
func (d Data) WithFreshness(period time.Duration) Data {
	d.freshness = period
	return d
}

// ForwardingFlags control which Interests a prefix registration matches.
type ForwardingFlags struct {
	// ChildInherit makes the registration match the registered prefix and
	// every descendant name, not just exact-name Interests.
	ChildInherit bool
}

// DefaultForwardingFlags returns the flags an NDN forwarder assumes when a
// registration does not specify any: ChildInherit enabled.
//
// The zero value of ForwardingFlags keeps ChildInherit disabled for
// explicit exact-only registrations.
func DefaultForwardingFlags() ForwardingFlags {
	return ForwardingFlags{ChildInherit: true}
}

package mockface

import "github.com/roach88/mockface/ndn"

// OnRegisterFailed is the failure callback a caller may attach to a prefix
// registration. The mock engine registers prefixes purely in memory, so
// registration always succeeds and the callback is never invoked; it is
// accepted so client code written against a real forwarder face can be
// exercised unchanged.
type OnRegisterFailed func(prefix ndn.Name)

// RegisterOption configures a single prefix registration.
type RegisterOption func(*registration)

// WithRegisterFailedCallback attaches a failure callback to a registration.
// Never invoked by the mock engine; see OnRegisterFailed.
func WithRegisterFailedCallback(cb OnRegisterFailed) RegisterOption {
	return func(r *registration) {
		r.onFailed = cb
	}
}

// registration is one entry in the handler table: a name prefix, the
// handler to invoke, and the flags controlling how the prefix matches.
//
// Registrations are independent even when they share a prefix; each is
// addressed only by its own id.
type registration struct {
	id       int64
	prefix   ndn.Name
	handler  InterestHandler
	flags    ndn.ForwardingFlags
	onFailed OnRegisterFailed
}

// registry is the handler table: prefix registrations in insertion order,
// with ids drawn from a per-registry monotonic counter.
//
// Not safe for concurrent use on its own; the owning Face serializes
// access.
type registry struct {
	ids  counter
	regs []*registration // ascending id order
}

func newRegistry() *registry {
	return &registry{}
}

// register stores a new registration and returns its id. Always succeeds:
// duplicate prefixes are allowed and each registration is independently
// matchable.
func (r *registry) register(prefix ndn.Name, handler InterestHandler, flags ndn.ForwardingFlags, opts ...RegisterOption) int64 {
	reg := &registration{
		id:      r.ids.next(),
		prefix:  prefix,
		handler: handler,
		flags:   flags,
	}
	for _, opt := range opts {
		opt(reg)
	}
	r.regs = append(r.regs, reg)
	return reg.id
}

// unregister removes the registration with the given id. Unknown or
// already-removed ids are a silent no-op. The id is never reissued.
func (r *registry) unregister(id int64) {
	for i, reg := range r.regs {
		if reg.id == id {
			r.regs = append(r.regs[:i], r.regs[i+1:]...)
			return
		}
	}
}

// ordered returns the registrations in ascending-id (insertion) order.
// The returned slice is the registry's own backing store; callers must not
// retain it past the enclosing critical section.
func (r *registry) ordered() []*registration {
	return r.regs
}

func (r *registry) len() int {
	return len(r.regs)
}

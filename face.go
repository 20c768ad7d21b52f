package mockface

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/mockface/internal/journal"
	"github.com/roach88/mockface/ndn"
)

// Face is an in-memory stand-in for a forwarder face: Interests expressed
// through it are answered from a table of canned responses or routed to
// registered prefix handlers, entirely within the calling goroutine.
//
// All counters are per-instance fields — independent Faces in concurrent
// tests never interfere.
type Face struct {
	mu        sync.Mutex
	responses *responseTable
	registry  *registry

	sink     DeliverySink
	journal  *journal.Store
	observer func(DispatchRecord)
	tokens   TokenGenerator
	logger   *slog.Logger

	seq        counter // dispatch sequence, stamps telemetry records
	pendingIDs counter // pending-interest ids, separate space from registration ids
}

// Option configures a Face at construction.
type Option func(*Face)

// WithDeliverySink replaces the default CollectSink with a custom sink.
func WithDeliverySink(sink DeliverySink) Option {
	return func(f *Face) {
		f.sink = sink
	}
}

// WithJournal attaches a dispatch journal. Every dispatch outcome is
// written to it; write failures are logged and never fail a dispatch.
// Close closes an attached journal.
func WithJournal(j *journal.Store) Option {
	return func(f *Face) {
		f.journal = j
	}
}

// WithObserver attaches a callback invoked with every DispatchRecord.
// The callback runs synchronously during dispatch, before delivery.
func WithObserver(fn func(DispatchRecord)) Option {
	return func(f *Face) {
		f.observer = fn
	}
}

// WithTokenGenerator replaces the UUIDv7 trace-token generator.
// Tests use internal/testutil's fixed generator for deterministic traces.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(f *Face) {
		f.tokens = g
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Face) {
		f.logger = l
	}
}

// New creates a Face with an empty response table and registry.
func New(opts ...Option) *Face {
	f := &Face{
		responses: newResponseTable(),
		registry:  newRegistry(),
		sink:      NewCollectSink(),
		tokens:    UUIDv7Generator{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddResponse installs a canned Data packet to send whenever an Interest
// with exactly this name is expressed. The same packet answers any number
// of Interests until removed. A canned response preempts every registered
// handler for the name.
//
// Re-adding under the same name overwrites: last write wins.
func (f *Face) AddResponse(name ndn.Name, data ndn.Data) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses.put(name, data)
	f.logger.Debug("added response", "name", name.URI())
}

// RemoveResponse stops answering Interests for the given name. Removing a
// name that has no entry is a no-op.
func (f *Face) RemoveResponse(name ndn.Name) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses.remove(name)
	f.logger.Debug("removed response", "name", name.URI())
}

// RegisterPrefix stores a handler for Interests under the given prefix and
// returns the registration id. Registration always succeeds; multiple
// registrations may share a prefix and each remains independently
// matchable. Ids are monotonic per Face and never reused.
//
// With flags.ChildInherit set the registration matches the prefix and all
// of its descendants; without it, only Interests naming the prefix exactly.
func (f *Face) RegisterPrefix(prefix ndn.Name, handler InterestHandler, flags ndn.ForwardingFlags, opts ...RegisterOption) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.registry.register(prefix, handler, flags, opts...)
	f.logger.Debug("registered prefix",
		"prefix", prefix.URI(),
		"registration_id", id,
		"child_inherit", flags.ChildInherit,
	)
	return id
}

// UnregisterPrefix removes the registration with the given id. Other
// registrations are unaffected even if they share the prefix. Unknown or
// already-removed ids are a silent no-op, and the id is never reissued.
func (f *Face) UnregisterPrefix(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registry.unregister(id)
	f.logger.Debug("unregistered prefix", "registration_id", id)
}

// ExpressInterest dispatches an Interest and returns a pending-interest id
// from a counter space separate from registration ids.
//
// Dispatch completes before the call returns:
//
//  1. An exact response-table entry is delivered through the sink and the
//     onData callback.
//  2. Otherwise the first matching prefix registration's handler runs,
//     fire-and-forget; anything it delivers reaches the same sink and
//     callback.
//  3. Otherwise the Interest goes unanswered — telemetry only, not an
//     error.
//
// The returned error only ever originates in collaborators (sink delivery,
// never the engine itself).
func (f *Face) ExpressInterest(ctx context.Context, interest ndn.Interest, onData OnData) (int64, error) {
	f.mu.Lock()
	id := f.pendingIDs.next()
	rec, reg := f.route(interest)
	f.mu.Unlock()

	f.record(ctx, rec)

	bound := boundSink{sink: f.sink, interest: interest, onData: onData}
	switch rec.Outcome {
	case OutcomeResponse:
		if err := bound.Deliver(ctx, *rec.Data); err != nil {
			return id, fmt.Errorf("deliver response for %s: %w", interest.Name().URI(), err)
		}
	case OutcomeHandler:
		// Outside the lock: handlers may call back into the Face.
		reg.handler.OnInterest(reg.prefix, interest, bound, reg.id)
	}
	return id, nil
}

// ExpressName builds an Interest for name — copying selector fields from
// the optional template — and expresses it. See ExpressInterest.
func (f *Face) ExpressName(ctx context.Context, name ndn.Name, tmpl *ndn.InterestTemplate, onData OnData) (int64, error) {
	return f.ExpressInterest(ctx, ndn.NewInterestFromTemplate(name, tmpl), onData)
}

// route decides the outcome for an Interest. Called with f.mu held; pure
// read over the two tables plus counter advancement.
func (f *Face) route(interest ndn.Interest) (DispatchRecord, *registration) {
	rec := DispatchRecord{
		Seq:      f.seq.next(),
		Token:    f.tokens.Generate(),
		Interest: interest,
	}

	if data, ok := f.responses.lookup(interest.Name()); ok {
		rec.Outcome = OutcomeResponse
		rec.Data = &data
		return rec, nil
	}

	if reg, ok := findMatch(interest.Name(), f.registry.ordered()); ok {
		rec.Outcome = OutcomeHandler
		rec.MatchedPrefix = reg.prefix
		rec.RegistrationID = reg.id
		return rec, reg
	}

	rec.Outcome = OutcomeNone
	return rec, nil
}

// RemovePendingInterest removes the pending-interest entry with the given
// id. Dispatch resolves synchronously, so there is never an entry left to
// remove; the call is a defined, safe, idempotent no-op kept for API
// fidelity with a real face.
func (f *Face) RemovePendingInterest(id int64) {
	f.logger.Debug("removed pending interest", "pending_id", id)
}

// ProcessEvents drains pending network events on a real face. The mock
// resolves everything synchronously inside ExpressInterest, so this is a
// no-op that always succeeds; it exists so event-loop code runs unchanged.
func (f *Face) ProcessEvents() error {
	return nil
}

// Close shuts the Face down, closing the attached journal if any. The
// tables themselves need no teardown.
func (f *Face) Close() error {
	if f.journal != nil {
		if err := f.journal.Close(); err != nil {
			return fmt.Errorf("close journal: %w", err)
		}
	}
	return nil
}

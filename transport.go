package mockface

import (
	"context"
	"sync"

	"github.com/roach88/mockface/ndn"
)

// DeliverySink is the channel through which the engine "sends" a Data
// packet back to the requester. In the system this mock stands in for, the
// same channel carries real network responses, so tests observe identical
// callback behavior whether a response came from the mock engine or a peer.
type DeliverySink interface {
	Deliver(ctx context.Context, data ndn.Data) error
}

// OnData is invoked when a Data packet answering an expressed Interest is
// delivered. The interest argument is the Interest originally expressed;
// callers must not modify either value.
type OnData func(interest ndn.Interest, data ndn.Data)

// InterestHandler is the callback capability attached to a prefix
// registration. Invocation is fire-and-forget from the engine's
// perspective: the handler may deliver its own Data through the provided
// sink, or do nothing, and the engine neither waits for nor interprets a
// result.
//
// Handlers run outside the Face's internal lock and may call back into the
// Face (e.g. to unregister themselves).
type InterestHandler interface {
	OnInterest(prefix ndn.Name, interest ndn.Interest, sink DeliverySink, registrationID int64)
}

// InterestHandlerFunc adapts a plain function to InterestHandler.
type InterestHandlerFunc func(prefix ndn.Name, interest ndn.Interest, sink DeliverySink, registrationID int64)

// OnInterest implements InterestHandler.
func (f InterestHandlerFunc) OnInterest(prefix ndn.Name, interest ndn.Interest, sink DeliverySink, registrationID int64) {
	f(prefix, interest, sink, registrationID)
}

// CollectSink is the bundled in-memory DeliverySink: it records every
// delivered Data packet in order. It is the default sink of a new Face.
//
// Safe for concurrent use.
type CollectSink struct {
	mu        sync.Mutex
	delivered []ndn.Data
}

// NewCollectSink returns an empty CollectSink.
func NewCollectSink() *CollectSink {
	return &CollectSink{}
}

// Deliver records the packet. Never fails.
func (s *CollectSink) Deliver(_ context.Context, data ndn.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, data)
	return nil
}

// Delivered returns a copy of all packets delivered so far, oldest first.
func (s *CollectSink) Delivered() []ndn.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ndn.Data, len(s.delivered))
	copy(out, s.delivered)
	return out
}

// Reset discards all recorded deliveries.
func (s *CollectSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = nil
}

// boundSink wraps the Face's configured sink for one dispatch, so that
// Data a handler produces flows through the same delivery path as a canned
// response: first the underlying sink, then the requester's OnData
// callback.
type boundSink struct {
	sink     DeliverySink
	interest ndn.Interest
	onData   OnData
}

func (s boundSink) Deliver(ctx context.Context, data ndn.Data) error {
	if err := s.sink.Deliver(ctx, data); err != nil {
		return err
	}
	if s.onData != nil {
		s.onData(s.interest, data)
	}
	return nil
}

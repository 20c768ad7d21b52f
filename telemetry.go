package mockface

import (
	"context"

	"github.com/roach88/mockface/internal/journal"
	"github.com/roach88/mockface/ndn"
)

// Outcome classifies how a dispatched Interest was resolved.
type Outcome string

const (
	// OutcomeResponse: an exact entry in the response table answered the
	// Interest. Handlers are never consulted in this case.
	OutcomeResponse Outcome = "response"

	// OutcomeHandler: a prefix registration matched and its handler was
	// invoked.
	OutcomeHandler Outcome = "handler"

	// OutcomeNone: nothing matched. Not an error — the Interest simply
	// goes unanswered, as it would time out on a real network.
	OutcomeNone Outcome = "none"
)

// DispatchRecord is the telemetry event emitted once per expressed
// Interest. It reaches the structured log, the optional observer callback,
// and the optional journal.
type DispatchRecord struct {
	// Seq is the dispatch sequence number, monotonic per Face.
	Seq int64

	// Token correlates everything produced by one dispatch.
	Token string

	// Interest is the Interest as dispatched.
	Interest ndn.Interest

	// Outcome classifies the resolution.
	Outcome Outcome

	// MatchedPrefix and RegistrationID identify the winning registration
	// when Outcome is OutcomeHandler.
	MatchedPrefix  ndn.Name
	RegistrationID int64

	// Data is the canned response when Outcome is OutcomeResponse.
	Data *ndn.Data
}

// record fans a dispatch record out to the log, the journal, and the
// observer. Journal write failures are logged and dispatch continues; the
// journal is diagnostics, not control flow.
func (f *Face) record(ctx context.Context, rec DispatchRecord) {
	switch rec.Outcome {
	case OutcomeResponse:
		f.logger.Debug("response found",
			"interest", rec.Interest.Name().URI(),
			"token", rec.Token,
			"seq", rec.Seq,
		)
	case OutcomeHandler:
		f.logger.Debug("handler found",
			"interest", rec.Interest.Name().URI(),
			"prefix", rec.MatchedPrefix.URI(),
			"registration_id", rec.RegistrationID,
			"token", rec.Token,
			"seq", rec.Seq,
		)
	case OutcomeNone:
		f.logger.Warn("no responder for interest",
			"interest", rec.Interest.Name().URI(),
			"token", rec.Token,
			"seq", rec.Seq,
		)
	}

	if f.journal != nil {
		jrec := journal.Record{
			Seq:      rec.Seq,
			Token:    rec.Token,
			Interest: rec.Interest.Name().URI(),
			Outcome:  string(rec.Outcome),
		}
		if rec.Outcome == OutcomeHandler {
			jrec.MatchedPrefix = rec.MatchedPrefix.URI()
			jrec.RegistrationID = rec.RegistrationID
		}
		if err := f.journal.WriteDispatch(ctx, jrec); err != nil {
			f.logger.Error("journal write failed",
				"error", err,
				"interest", rec.Interest.Name().URI(),
				"token", rec.Token,
				"seq", rec.Seq,
			)
		}
	}

	if f.observer != nil {
		f.observer(rec)
	}
}

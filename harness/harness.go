package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/mockface"
	"github.com/roach88/mockface/internal/journal"
	"github.com/roach88/mockface/internal/testutil"
	"github.com/roach88/mockface/ndn"
)

// Run executes a scenario and returns its result.
//
// Each scenario runs against a fresh Face with a fixed token generator, a
// collecting delivery sink, and an in-memory journal, so runs are isolated
// and reproducible.
//
// Execution flow:
//  1. Install canned responses and prefix registrations from the fixtures.
//  2. Express each flow step's Interest and record the observed dispatch.
//  3. Check each step's expect clause against the actual outcome.
//  4. Evaluate trace/delivery assertions.
//
// Run returns an error for scenario defects (unparseable names, engine
// collaborator failures); expectation mismatches land in Result.Errors
// with Pass set to false.
func Run(scenario *Scenario) (*Result, error) {
	j, err := journal.Open(journal.InMemory)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	tokenPrefix := scenario.Token
	if tokenPrefix == "" {
		tokenPrefix = "trace"
	}

	sink := mockface.NewCollectSink()
	var records []mockface.DispatchRecord
	face := mockface.New(
		mockface.WithDeliverySink(sink),
		mockface.WithJournal(j),
		mockface.WithObserver(func(rec mockface.DispatchRecord) {
			records = append(records, rec)
		}),
		mockface.WithTokenGenerator(testutil.NewFixedTokenGenerator(tokenPrefix)),
		mockface.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	defer face.Close()

	if err := installFixtures(face, scenario); err != nil {
		return nil, err
	}

	ctx := context.Background()
	result := NewResult()

	for i, step := range scenario.Flow {
		name, err := ndn.ParseName(step.Express)
		if err != nil {
			return nil, fmt.Errorf("flow[%d]: %w", i, err)
		}

		var delivered *ndn.Data
		_, err = face.ExpressInterest(ctx, ndn.NewInterest(name),
			func(_ ndn.Interest, data ndn.Data) {
				d := data
				delivered = &d
			})
		if err != nil {
			return nil, fmt.Errorf("flow[%d]: express %s: %w", i, step.Express, err)
		}

		rec := records[len(records)-1]
		event := TraceEvent{
			Step:     i + 1,
			Interest: rec.Interest.Name().URI(),
			Outcome:  string(rec.Outcome),
			Token:    rec.Token,
			Seq:      rec.Seq,
		}
		if rec.Outcome == mockface.OutcomeHandler {
			event.MatchedPrefix = rec.MatchedPrefix.URI()
			event.RegistrationID = rec.RegistrationID
		}
		if delivered != nil {
			event.Content = string(delivered.Content())
		}
		result.Trace = append(result.Trace, event)

		checkExpect(result, i, step, event)
	}

	EvaluateAssertions(result, scenario.Assertions, sink.Delivered())

	return result, nil
}

// installFixtures populates the face's tables from the scenario.
func installFixtures(face *mockface.Face, scenario *Scenario) error {
	for i, r := range scenario.Responses {
		name, err := ndn.ParseName(r.Name)
		if err != nil {
			return fmt.Errorf("responses[%d]: %w", i, err)
		}
		face.AddResponse(name, ndn.NewData(name, []byte(r.Content)))
	}

	for i, r := range scenario.Registrations {
		prefix, err := ndn.ParseName(r.Prefix)
		if err != nil {
			return fmt.Errorf("registrations[%d]: %w", i, err)
		}
		face.RegisterPrefix(prefix, scriptedHandler(r.Reply),
			ndn.ForwardingFlags{ChildInherit: r.ChildInherit})
	}

	return nil
}

// scriptedHandler builds the handler for a registration fixture: silent
// when reply is empty, otherwise answering every matched Interest with the
// reply content under the Interest's own name.
func scriptedHandler(reply string) mockface.InterestHandler {
	return mockface.InterestHandlerFunc(
		func(_ ndn.Name, interest ndn.Interest, sink mockface.DeliverySink, _ int64) {
			if reply == "" {
				return
			}
			_ = sink.Deliver(context.Background(), ndn.NewData(interest.Name(), []byte(reply)))
		})
}

// checkExpect validates one flow step's expect clause against the
// observed trace event.
func checkExpect(result *Result, step int, flowStep FlowStep, event TraceEvent) {
	expect := flowStep.Expect
	if expect == nil {
		return
	}

	if event.Outcome != expect.Outcome {
		result.AddError("flow[%d] %s: expected outcome %q, got %q",
			step, flowStep.Express, expect.Outcome, event.Outcome)
	}

	if expect.Content != "" {
		if event.Content == "" {
			result.AddError("flow[%d] %s: expected content %q, nothing was delivered",
				step, flowStep.Express, expect.Content)
		} else if event.Content != expect.Content {
			result.AddError("flow[%d] %s: expected content %q, got %q",
				step, flowStep.Express, expect.Content, event.Content)
		}
	}
}

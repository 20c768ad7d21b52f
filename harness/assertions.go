package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/mockface/ndn"
)

// AssertionError is returned when an assertion fails. It carries the full
// trace so a failure message is debuggable on its own.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s -> %s\n", i+1, event.Interest, event.Outcome)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against the finished trace and
// the delivery log, recording failures into the result.
func EvaluateAssertions(result *Result, assertions []Assertion, delivered []ndn.Data) {
	for _, assertion := range assertions {
		var err error
		switch assertion.Type {
		case AssertOutcomeCount:
			err = assertOutcomeCount(result.Trace, assertion)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, assertion)
		case AssertDelivered:
			err = assertDelivered(result.Trace, delivered, assertion)
		default:
			// Unknown types are rejected at load time; anything arriving
			// here was constructed in code.
			err = fmt.Errorf("unknown assertion type %q", assertion.Type)
		}
		if err != nil {
			result.AddError("%s", err)
		}
	}
}

// assertOutcomeCount checks that the given outcome occurs exactly Count
// times in the trace.
func assertOutcomeCount(trace []TraceEvent, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if event.Outcome == assertion.Outcome {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertOutcomeCount,
			Expected: fmt.Sprintf("outcome %q exactly %d time(s)", assertion.Outcome, assertion.Count),
			Actual:   fmt.Sprintf("observed %d time(s)", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertTraceOrder checks that the named Interests appear in the trace in
// the given relative order. Intervening dispatches are allowed.
func assertTraceOrder(trace []TraceEvent, assertion Assertion) error {
	next := 0
	for _, event := range trace {
		if next < len(assertion.Interests) && event.Interest == assertion.Interests[next] {
			next++
		}
	}

	if next != len(assertion.Interests) {
		return &AssertionError{
			Type:     AssertTraceOrder,
			Expected: fmt.Sprintf("interests in order %v", assertion.Interests),
			Actual:   fmt.Sprintf("order broken at %q", assertion.Interests[next]),
			Trace:    trace,
		}
	}
	return nil
}

// assertDelivered checks that a Data packet with the given name (and,
// when specified, content) was delivered through the sink.
func assertDelivered(trace []TraceEvent, delivered []ndn.Data, assertion Assertion) error {
	for _, data := range delivered {
		if data.Name().URI() != assertion.Name {
			continue
		}
		if assertion.Content == "" || string(data.Content()) == assertion.Content {
			return nil
		}
	}

	expected := fmt.Sprintf("delivery for %s", assertion.Name)
	if assertion.Content != "" {
		expected = fmt.Sprintf("delivery for %s with content %q", assertion.Name, assertion.Content)
	}
	return &AssertionError{
		Type:     AssertDelivered,
		Expected: expected,
		Actual:   fmt.Sprintf("not found among %d deliveries", len(delivered)),
		Trace:    trace,
	}
}

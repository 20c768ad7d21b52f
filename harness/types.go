package harness

import "fmt"

// TraceEvent is one dispatched Interest in a scenario run, as observed
// from the engine's telemetry.
type TraceEvent struct {
	// Step is the 1-based flow-step index that expressed the Interest.
	Step int `json:"step"`

	// Interest is the expressed name in URI form.
	Interest string `json:"interest"`

	// Outcome is "response", "handler", or "none".
	Outcome string `json:"outcome"`

	// MatchedPrefix and RegistrationID identify the winning registration
	// for handler outcomes.
	MatchedPrefix  string `json:"matched_prefix,omitempty"`
	RegistrationID int64  `json:"registration_id,omitempty"`

	// Content is the delivered payload, when a Data packet answered the
	// Interest (canned or handler-produced).
	Content string `json:"content,omitempty"`

	// Token is the deterministic trace token for this dispatch.
	Token string `json:"token"`

	// Seq is the engine's dispatch sequence number.
	Seq int64 `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace lists all dispatches in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
	}
}

// AddError records a validation failure and marks the result failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

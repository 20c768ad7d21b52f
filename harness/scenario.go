package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a dispatch test scenario: fixtures to install, a flow
// of Interests to express, and expectations over the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden
	// file when run through RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Token is the trace-token prefix for the deterministic generator.
	// Defaults to "trace", yielding tokens "trace-0001", "trace-0002", ...
	Token string `yaml:"token,omitempty"`

	// Responses are canned Data packets installed before the flow runs.
	Responses []ResponseFixture `yaml:"responses,omitempty"`

	// Registrations are prefix handlers installed before the flow runs,
	// in order — registration ids are assigned 1, 2, ... accordingly.
	Registrations []RegistrationFixture `yaml:"registrations,omitempty"`

	// Flow is the sequence of Interests to express.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the finished trace and deliveries.
	// Supported types: outcome_count, trace_order, delivered.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// ResponseFixture installs one response-table entry.
type ResponseFixture struct {
	// Name is the exact name the response answers, in URI form.
	Name string `yaml:"name"`

	// Content is the response payload.
	Content string `yaml:"content"`
}

// RegistrationFixture installs one prefix registration with a scripted
// handler.
type RegistrationFixture struct {
	// Prefix is the registered name prefix, in URI form.
	Prefix string `yaml:"prefix"`

	// ChildInherit makes the registration match descendants of the
	// prefix, not just the exact name.
	ChildInherit bool `yaml:"child_inherit"`

	// Reply, when non-empty, makes the handler answer every matched
	// Interest with a Data packet carrying this content. When empty the
	// handler stays silent (fire-and-forget with no response).
	Reply string `yaml:"reply,omitempty"`
}

// FlowStep expresses one Interest.
type FlowStep struct {
	// Express is the Interest name, in URI form.
	Express string `yaml:"express"`

	// Expect validates the step's dispatch outcome. If nil the step is
	// unchecked (the trace still records what happened).
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of one expressed Interest.
type ExpectClause struct {
	// Outcome is "response", "handler", or "none".
	Outcome string `yaml:"outcome"`

	// Content, when non-empty, additionally requires that a Data packet
	// with this payload was delivered for the step.
	Content string `yaml:"content,omitempty"`
}

// Assertion validates the finished trace or the delivery log.
type Assertion struct {
	// Type is one of the Assert* constants below.
	Type string `yaml:"type"`

	// Outcome and Count are used by outcome_count.
	Outcome string `yaml:"outcome,omitempty"`
	Count   int    `yaml:"count,omitempty"`

	// Interests is the expected order of Interest names (trace_order).
	// Intervening dispatches are allowed; only relative order is checked.
	Interests []string `yaml:"interests,omitempty"`

	// Name and Content identify an expected delivery (delivered).
	// Content empty means any payload under that name.
	Name    string `yaml:"name,omitempty"`
	Content string `yaml:"content,omitempty"`
}

// Assertion type constants.
const (
	AssertOutcomeCount = "outcome_count"
	AssertTraceOrder   = "trace_order"
	AssertDelivered    = "delivered"
)

// validOutcomes for expect clauses and outcome_count assertions.
var validOutcomes = map[string]bool{
	"response": true,
	"handler":  true,
	"none":     true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" for "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, r := range s.Responses {
		if r.Name == "" {
			return fmt.Errorf("responses[%d]: name is required", i)
		}
	}

	for i, r := range s.Registrations {
		if r.Prefix == "" {
			return fmt.Errorf("registrations[%d]: prefix is required", i)
		}
	}

	for i, step := range s.Flow {
		if step.Express == "" {
			return fmt.Errorf("flow[%d]: express is required", i)
		}
		if step.Expect != nil && !validOutcomes[step.Expect.Outcome] {
			return fmt.Errorf("flow[%d].expect: unknown outcome %q", i, step.Expect.Outcome)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertOutcomeCount:
		if !validOutcomes[a.Outcome] {
			return fmt.Errorf("assertions[%d]: unknown outcome %q for outcome_count", index, a.Outcome)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertTraceOrder:
		if len(a.Interests) == 0 {
			return fmt.Errorf("assertions[%d]: interests list is required for trace_order", index)
		}
	case AssertDelivered:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for delivered", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

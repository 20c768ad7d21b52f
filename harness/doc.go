// Package harness runs declarative scenario files against the mock face
// engine.
//
// A scenario is a YAML file naming the canned responses and prefix
// registrations to install, a flow of Interests to express, the outcome
// each step expects, and assertions over the finished trace. Scenarios run
// with a fixed token generator and a fresh in-memory journal, so two runs
// of the same scenario produce byte-identical traces — which is what makes
// golden-file comparison (RunWithGolden) possible.
//
// Expectations are checked against the engine's actual observed dispatch
// records, not manufactured from the scenario: a step that expects
// "response" fails if the engine routed the Interest to a handler or left
// it unanswered.
package harness

package mockface

import "github.com/google/uuid"

// TokenGenerator produces correlation tokens for dispatch telemetry.
// Every expressed Interest is stamped with one token, which appears in log
// events, observer records, and the journal, tying the pieces of a single
// dispatch together.
//
// Implemented by UUIDv7Generator (production) and by the fixed generator in
// internal/testutil (deterministic tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 trace tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so tokens sort by
// creation time — convenient when reading a journal from a long test run.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7 string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

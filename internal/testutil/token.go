// Package testutil provides deterministic stand-ins for the Face's
// production collaborators, so traces and golden files come out identical
// on every run.
package testutil

import (
	"fmt"
	"sync"
)

// FixedTokenGenerator yields an unlimited deterministic token stream:
// "<prefix>-0001", "<prefix>-0002", and so on. Used by the harness, where
// the number of dispatches is driven by the scenario file.
//
// Safe for concurrent use via internal mutex.
type FixedTokenGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewFixedTokenGenerator creates a generator with the given token prefix.
func NewFixedTokenGenerator(prefix string) *FixedTokenGenerator {
	return &FixedTokenGenerator{prefix: prefix}
}

// Generate returns the next token in the stream.
func (g *FixedTokenGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// TokenSequence returns predetermined tokens in order and panics when
// exhausted. The fail-fast panic catches test misconfiguration: the test
// expressed more Interests than it declared tokens for.
//
// Safe for concurrent use via internal mutex.
type TokenSequence struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewTokenSequence creates a generator that returns tokens in order.
//
// Example:
//
//	gen := NewTokenSequence("tok-1", "tok-2")
//	gen.Generate() // "tok-1"
//	gen.Generate() // "tok-2"
//	gen.Generate() // panic: all tokens exhausted
func NewTokenSequence(tokens ...string) *TokenSequence {
	return &TokenSequence{tokens: tokens}
}

// Generate returns the next predetermined token.
func (g *TokenSequence) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("TokenSequence: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}

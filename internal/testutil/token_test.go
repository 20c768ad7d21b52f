package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTokenGenerator_DeterministicStream(t *testing.T) {
	g := NewFixedTokenGenerator("trace")

	assert.Equal(t, "trace-0001", g.Generate())
	assert.Equal(t, "trace-0002", g.Generate())
	assert.Equal(t, "trace-0003", g.Generate())
}

func TestFixedTokenGenerator_IndependentInstances(t *testing.T) {
	a := NewFixedTokenGenerator("a")
	b := NewFixedTokenGenerator("b")

	assert.Equal(t, "a-0001", a.Generate())
	assert.Equal(t, "b-0001", b.Generate())
	assert.Equal(t, "a-0002", a.Generate())
}

func TestTokenSequence_InOrder(t *testing.T) {
	g := NewTokenSequence("tok-1", "tok-2")

	assert.Equal(t, "tok-1", g.Generate())
	assert.Equal(t, "tok-2", g.Generate())
}

func TestTokenSequence_PanicsWhenExhausted(t *testing.T) {
	g := NewTokenSequence("only")
	g.Generate()

	assert.Panics(t, func() { g.Generate() })
}

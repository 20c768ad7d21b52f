package ndn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInterest_DefaultLifetime(t *testing.T) {
	i := NewInterest(MustParseName("/ndn/ping"))

	assert.Equal(t, DefaultInterestLifetime, i.Lifetime())
	assert.False(t, i.MustBeFresh())
}

func TestNewInterestFromTemplate(t *testing.T) {
	name := MustParseName("/ndn/ping")

	t.Run("nil template uses defaults", func(t *testing.T) {
		i := NewInterestFromTemplate(name, nil)
		assert.Equal(t, DefaultInterestLifetime, i.Lifetime())
		assert.False(t, i.MustBeFresh())
	})

	t.Run("selector fields copied", func(t *testing.T) {
		i := NewInterestFromTemplate(name, &InterestTemplate{
			Lifetime:    250 * time.Millisecond,
			MustBeFresh: true,
		})
		assert.Equal(t, 250*time.Millisecond, i.Lifetime())
		assert.True(t, i.MustBeFresh())
	})

	t.Run("zero template lifetime falls back to default", func(t *testing.T) {
		i := NewInterestFromTemplate(name, &InterestTemplate{MustBeFresh: true})
		assert.Equal(t, DefaultInterestLifetime, i.Lifetime())
		assert.True(t, i.MustBeFresh())
	})
}

func TestInterest_WithBuildersReturnCopies(t *testing.T) {
	base := NewInterest(MustParseName("/a"))
	tweaked := base.WithLifetime(time.Second).WithMustBeFresh(true)

	assert.Equal(t, DefaultInterestLifetime, base.Lifetime())
	assert.False(t, base.MustBeFresh())
	assert.Equal(t, time.Second, tweaked.Lifetime())
	assert.True(t, tweaked.MustBeFresh())
}

func TestNewData_CopiesContent(t *testing.T) {
	content := []byte("pong")
	d := NewData(MustParseName("/ndn/ping"), content)

	content[0] = 'X'
	assert.Equal(t, []byte("pong"), d.Content())
}

func TestData_WithFreshness(t *testing.T) {
	d := NewData(MustParseName("/a"), nil)
	fresh := d.WithFreshness(10 * time.Second)

	assert.Zero(t, d.Freshness())
	assert.Equal(t, 10*time.Second, fresh.Freshness())
}

func TestDefaultForwardingFlags(t *testing.T) {
	assert.True(t, DefaultForwardingFlags().ChildInherit)
	assert.False(t, ForwardingFlags{}.ChildInherit)
}

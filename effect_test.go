package possplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectSatisfies(t *testing.T) {
	e := Effect{
		PositiveDiscriminants: NewPropSet("alive"),
		NegativeDiscriminants: NewPropSet("at-0"),
	}

	assert.True(t, e.Satisfies(NewState("alive", "at-1")))
	assert.False(t, e.Satisfies(NewState("at-1")), "missing positive discriminant")
	assert.False(t, e.Satisfies(NewState("alive", "at-0")), "present negative discriminant")

	unconditional := Effect{
		PositiveDiscriminants: NewPropSet(),
		NegativeDiscriminants: NewPropSet(),
	}
	assert.True(t, unconditional.Satisfies(NewState()))
	assert.True(t, unconditional.Satisfies(NewState("anything")))
}

func TestEffectIsLocallyNormalized(t *testing.T) {
	cons := func(ps ...float64) []Consequent {
		out := make([]Consequent, len(ps))
		for i, p := range ps {
			out[i] = Consequent{Plausibility: p, Additions: NewPropSet(), Deletions: NewPropSet()}
		}
		return out
	}

	assert.True(t, Effect{Consequents: cons(1, 0.25)}.IsLocallyNormalized())
	assert.False(t, Effect{Consequents: cons(0.9, 0.25)}.IsLocallyNormalized(), "max must be exactly 1")
	assert.False(t, Effect{Consequents: cons(1, 1.5)}.IsLocallyNormalized(), "values above 1")
	assert.False(t, Effect{Consequents: cons(1, -0.5)}.IsLocallyNormalized(), "values below 0")
	assert.False(t, Effect{Consequents: cons()}.IsLocallyNormalized(), "no consequents")
}

func TestApplyConsequent(t *testing.T) {
	s := NewState("at-0", "alive")

	next := ApplyConsequent(s, NewPropSet("at-1"), NewPropSet("at-0"))
	assert.Equal(t, NewState("at-1", "alive"), next)

	t.Run("pure", func(t *testing.T) {
		again := ApplyConsequent(s, NewPropSet("at-1"), NewPropSet("at-0"))
		assert.Equal(t, next, again)
		assert.Equal(t, NewState("at-0", "alive"), s, "input state is unchanged")
	})

	t.Run("add wins over delete", func(t *testing.T) {
		got := ApplyConsequent(s, NewPropSet("alive"), NewPropSet("alive"))
		assert.True(t, got.Has("alive"))
	})

	t.Run("empty add and delete is identity", func(t *testing.T) {
		assert.Equal(t, s, ApplyConsequent(s, NewPropSet(), NewPropSet()))
	})
}

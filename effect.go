package possplan

// Consequent is one possible outcome of a firing effect: a plausibility
// degree together with the propositions the outcome adds and deletes.
type Consequent struct {
	Plausibility Plausibility
	Additions    PropSet
	Deletions    PropSet
}

// Effect is a guarded nondeterministic outcome set inside an action. The
// discriminants form the guard: the effect fires in states that contain
// every positive discriminant and none of the negative ones. Conditioned
// on firing, exactly which consequent occurs is nondeterministic, graded
// by plausibility.
type Effect struct {
	PositiveDiscriminants PropSet
	NegativeDiscriminants PropSet
	Consequents           []Consequent
}

// Satisfies reports whether s satisfies the effect's discriminant:
// PositiveDiscriminants ⊆ s and NegativeDiscriminants ∩ s = ∅.
func (e Effect) Satisfies(s State) bool {
	props := s.PropSet()
	if !e.PositiveDiscriminants.SubsetOf(props) {
		return false
	}
	return e.NegativeDiscriminants.DisjointFrom(props)
}

// IsLocallyNormalized checks the consequent plausibilities: all in [0,1]
// and the maximum exactly 1 — conditioned on this effect firing, at least
// one outcome must be fully plausible.
func (e Effect) IsLocallyNormalized() bool {
	maxP := 0.0
	for _, c := range e.Consequents {
		if c.Plausibility < 0 || c.Plausibility > 1 {
			return false
		}
		if c.Plausibility > maxP {
			maxP = c.Plausibility
		}
	}
	return maxP == 1
}

// ApplyConsequent computes Res(e, s) = add ∪ (s − del): the state that
// results from one consequent's change on s. Additions win over deletions
// when the two overlap. Pure — identical inputs yield identical states.
func ApplyConsequent(s State, add, del PropSet) State {
	out := NewPropSet()
	for p := range add {
		out.Add(p)
	}
	for _, p := range s.Props() {
		if !del.Has(p) {
			out.Add(p)
		}
	}
	return NewStateFromSet(out)
}

package possplan

// Possibility and necessity propagation, following definition 3 of the
// ECP'97 paper: a max-min (sup-min) convolution for possibility and its
// inf-max dual for necessity.

// PossibilityFromState computes π[s′ | s, a] for every s′ in space: the
// per-state transition distribution of applying a in s. The governing
// effect is located via FindApplicableEffect; each consequent contributes
// its plausibility to the state it produces, and when several consequents
// produce the same state the maximum wins.
func PossibilityFromState(s State, a Action, space *StateSpace) (*Dist, error) {
	next := NewDist(space)
	effect, err := a.FindApplicableEffect(s)
	if err != nil {
		return nil, err
	}
	for _, c := range effect.Consequents {
		sNext := ApplyConsequent(s, c.Additions, c.Deletions)
		if c.Plausibility > next.Get(sNext) {
			next.Set(sNext, c.Plausibility)
		}
	}
	return next, nil
}

// NextPossibility computes π[sN | π, a] for every sN: the possibility
// distribution after applying a to dist. For each predecessor s0 the two
// sources of uncertainty combine by min — how plausible s0 is now, and
// how plausible the transition s0 → sN is — and across predecessors the
// results combine by max. The reduction order (min inside, max outside)
// is the possibilistic analogue of marginalization and must not be
// rearranged.
//
// Predecessors with π(s0) = 0 contribute nothing, which is why iterating
// only the non-zero states is both correct and what keeps propagation
// sparse.
func NextPossibility(dist *Dist, a Action) (*Dist, error) {
	next := NewDist(dist.Space())
	for _, s0 := range dist.NonZeroStates() {
		fromS0, err := PossibilityFromState(s0, a, dist.Space())
		if err != nil {
			return nil, err
		}
		for _, sN := range fromS0.NonZeroStates() {
			p := min(fromS0.Get(sN), dist.Get(s0))
			if p > next.Get(sN) {
				next.Set(sN, p)
			}
		}
	}
	return next, nil
}

// NextNecessity computes N[sN | π, a] for every sN: the necessity of each
// state after applying a to dist. Every value starts at 1 and is lowered
// by min against max(1 − π(s0), 1 − π[sNC | s0, a]) for every predecessor
// s0 in the full space and every sNC ≠ sN. Unlike possibility, necessity
// must examine the complement universally, so all predecessors are
// visited, zero-plausibility ones included; the |S|³ cost per call is
// intrinsic to the definition.
func NextNecessity(dist *Dist, a Action) (*Dist, error) {
	space := dist.Space()
	next := NewDist(space)
	for _, s := range space.States() {
		next.Set(s, 1)
	}
	for _, s0 := range space.States() {
		fromS0, err := PossibilityFromState(s0, a, space)
		if err != nil {
			return nil, err
		}
		for _, sN := range space.States() {
			for _, sNC := range space.States() {
				if sN == sNC {
					continue
				}
				p := max(1-dist.Get(s0), 1-fromS0.Get(sNC))
				if p < next.Get(sN) {
					next.Set(sN, p)
				}
			}
		}
	}
	return next, nil
}

// NecessityOfSet computes N[target | π]: the necessity that the true
// state, described only by dist, lies in target. This is the classical
// necessity-from-possibility formula
//
//	N(A | π) = 1 − sup_{s ∉ A} π(s)
//
// taken directly over the current distribution, with no action step. The
// search engine uses it as the goal test on each frontier distribution.
func NecessityOfSet(target StateSet, dist *Dist) Plausibility {
	n := 1.0
	for _, s0 := range dist.Space().States() {
		if target.Has(s0) {
			continue
		}
		if v := 1 - dist.Get(s0); v < n {
			n = v
		}
	}
	return n
}

// NecessityOfSetAfter computes N[target | π, a]: the necessity that the
// state reached by applying a to dist lies in target, without building
// the intermediate necessity distribution.
func NecessityOfSetAfter(target StateSet, dist *Dist, a Action) (Plausibility, error) {
	space := dist.Space()
	n := 1.0
	for _, s0 := range space.States() {
		fromS0, err := PossibilityFromState(s0, a, space)
		if err != nil {
			return 0, err
		}
		for _, sNC := range space.States() {
			if target.Has(sNC) {
				continue
			}
			p := max(1-dist.Get(s0), 1-fromS0.Get(sNC))
			if p < n {
				n = p
			}
		}
	}
	return n, nil
}

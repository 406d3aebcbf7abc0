package possplan

import (
	"sort"
	"strings"
)

// stateSep separates proposition names inside a state key. Unit separator
// so that no reasonable proposition name collides with the encoding.
const stateSep = "\x1f"

// State is an immutable set of propositions under the closed-world
// assumption: every proposition not in the set is false. States are
// value types with structural equality — two states built from the same
// propositions (in any order) compare equal and hash identically, so a
// State can serve as a map key.
type State struct {
	key string // canonical sorted encoding of the proposition names
}

// NewState builds a state from its true propositions. Duplicates collapse.
func NewState(props ...Proposition) State {
	names := make([]string, 0, len(props))
	seen := make(map[Proposition]struct{}, len(props))
	for _, p := range props {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		names = append(names, string(p))
	}
	sort.Strings(names)
	return State{key: strings.Join(names, stateSep)}
}

// NewStateFromSet builds a state from a proposition set.
func NewStateFromSet(ps PropSet) State {
	props := ps.ToSlice()
	return NewState(props...)
}

// Has reports whether the proposition is true in this state.
func (s State) Has(p Proposition) bool {
	for _, q := range s.Props() {
		if q == p {
			return true
		}
	}
	return false
}

// Contains reports whether every proposition in ps holds in this state.
// Non-strict: a state containing exactly ps contains ps.
func (s State) Contains(ps PropSet) bool {
	have := s.PropSet()
	return ps.SubsetOf(have)
}

// Props returns the true propositions in sorted order.
func (s State) Props() []Proposition {
	if s.key == "" {
		return nil
	}
	names := strings.Split(s.key, stateSep)
	out := make([]Proposition, len(names))
	for i, n := range names {
		out[i] = Proposition(n)
	}
	return out
}

// PropSet returns the true propositions as a freshly allocated set.
func (s State) PropSet() PropSet {
	return NewPropSet(s.Props()...)
}

func (s State) String() string {
	parts := make([]string, 0, 4)
	for _, p := range s.Props() {
		parts = append(parts, "("+string(p)+")")
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ----- State sets -----

// StateSet is a set of states, e.g. the goal states of a problem.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	ss := make(StateSet, len(states))
	for _, s := range states {
		ss[s] = struct{}{}
	}
	return ss
}

func (ss StateSet) Has(s State) bool { _, ok := ss[s]; return ok }
func (ss StateSet) Add(s State)      { ss[s] = struct{}{} }
func (ss StateSet) Size() int        { return len(ss) }

// ----- State space -----

// StateSpace is the fixed, finite set of states a planning problem ranges
// over. It preserves insertion order so that iteration (and therefore
// logging and diagram output) is reproducible; the propagation results do
// not depend on the order because max and min are order-insensitive.
type StateSpace struct {
	states []State
	member StateSet
}

func NewStateSpace(states ...State) *StateSpace {
	sp := &StateSpace{member: NewStateSet()}
	for _, s := range states {
		sp.add(s)
	}
	return sp
}

func (sp *StateSpace) add(s State) {
	if sp.member.Has(s) {
		return
	}
	sp.member.Add(s)
	sp.states = append(sp.states, s)
}

// Contains reports whether s is one of the space's states.
func (sp *StateSpace) Contains(s State) bool { return sp.member.Has(s) }

// States returns the states in insertion order. Callers must not mutate
// the returned slice.
func (sp *StateSpace) States() []State { return sp.states }

func (sp *StateSpace) Size() int { return len(sp.states) }

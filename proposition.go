// Package possplan implements possibilistic planning: STRIPS-style states
// and actions under qualitative (possibility/necessity) uncertainty, after
// Da Costa Pereira, Garcia, Lang & Martin-Clouaire, "Possibilistic Planning:
// Representation and Complexity" (ECP 1997).
//
// Absence of a proposition in a state implies falsity (closed world).
package possplan

import (
	"sort"
	"strings"
)

// Proposition is an atomic named fact. Two propositions with the same
// name are the same fact.
type Proposition string

// PropSet is a set of propositions, used for effect discriminants,
// add/delete lists and goal conditions.
type PropSet map[Proposition]struct{}

func NewPropSet(props ...Proposition) PropSet {
	ps := make(PropSet, len(props))
	for _, p := range props {
		ps[p] = struct{}{}
	}
	return ps
}

func (ps PropSet) Has(p Proposition) bool { _, ok := ps[p]; return ok }
func (ps PropSet) Add(p Proposition)      { ps[p] = struct{}{} }
func (ps PropSet) Size() int              { return len(ps) }

// SubsetOf reports whether every proposition in ps is in other.
// The comparison is non-strict: a set is a subset of itself.
func (ps PropSet) SubsetOf(other PropSet) bool {
	for p := range ps {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// DisjointFrom reports whether ps and other share no proposition.
func (ps PropSet) DisjointFrom(other PropSet) bool {
	for p := range ps {
		if other.Has(p) {
			return false
		}
	}
	return true
}

func (ps PropSet) ToSlice() []Proposition {
	out := make([]Proposition, 0, len(ps))
	for p := range ps {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (ps PropSet) String() string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps.ToSlice() {
		parts = append(parts, "("+string(p)+")")
	}
	return "{" + strings.Join(parts, " ") + "}"
}

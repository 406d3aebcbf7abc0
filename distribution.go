package possplan

import (
	"sort"
	"strconv"
	"strings"
)

// Plausibility is a possibility degree in [0,1].
type Plausibility = float64

// Dist is a sparse possibility distribution over a state space: a mapping
// State → plausibility where unlisted states implicitly have plausibility 0.
// A valid distribution is normalized — its maximum stored value is exactly 1.
//
// The same type carries necessity values when produced by NextNecessity;
// those vectors are not normalized and IsValid does not apply to them.
type Dist struct {
	space *StateSpace
	pl    map[State]Plausibility
}

// NewDist creates an empty (all-zero) distribution over the given space.
func NewDist(space *StateSpace) *Dist {
	return &Dist{space: space, pl: make(map[State]Plausibility)}
}

// Space returns the state space this distribution is declared over.
func (d *Dist) Space() *StateSpace { return d.space }

// Get returns the stored plausibility of s, or 0 if none is stored.
// Lookup is total: s need not belong to the declared space.
func (d *Dist) Get(s State) Plausibility { return d.pl[s] }

// Set stores or overwrites the plausibility of s. No range check happens
// here; validity is a separate, explicit check.
func (d *Dist) Set(s State, p Plausibility) { d.pl[s] = p }

// IsValid checks the distribution invariants and fails closed:
//   - every stored key belongs to the declared state space,
//   - every stored value lies in [0,1],
//   - the maximum stored value is exactly 1 (normalization).
//
// An empty distribution is not valid.
func (d *Dist) IsValid() bool {
	maxP := 0.0
	for s, p := range d.pl {
		if !d.space.Contains(s) {
			return false
		}
		if p < 0 || p > 1 {
			return false
		}
		if p > maxP {
			maxP = p
		}
	}
	return maxP == 1
}

// NonZeroStates returns the states with stored plausibility > 0, in
// unspecified order. Propagation iterates these instead of the full space
// so that zero-default states are never materialized.
func (d *Dist) NonZeroStates() []State {
	out := make([]State, 0, len(d.pl))
	for s, p := range d.pl {
		if p > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Key returns a canonical encoding of the non-zero entries. Two
// distributions have the same key iff Equal reports true, so the key
// serves as a deduplication handle in the search's seen-set.
func (d *Dist) Key() string {
	entries := make([]string, 0, len(d.pl))
	for s, p := range d.pl {
		if p > 0 {
			entries = append(entries, s.key+"="+strconv.FormatFloat(p, 'g', -1, 64))
		}
	}
	sort.Strings(entries)
	return strings.Join(entries, ";")
}

// Equal reports whether both distributions have the same non-zero entries.
// Explicit zeros and absent entries are indistinguishable.
func (d *Dist) Equal(other *Dist) bool {
	return d.Key() == other.Key()
}

// String prints only the non-zero entries.
func (d *Dist) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for _, s := range d.sortedNonZero() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(s.String())
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatFloat(d.pl[s], 'g', -1, 64))
	}
	sb.WriteString("}")
	return sb.String()
}

func (d *Dist) sortedNonZero() []State {
	out := d.NonZeroStates()
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

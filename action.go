package possplan

import (
	"errors"
	"fmt"
)

// ErrNoApplicableEffect reports that an action has no effect whose
// discriminant a given state satisfies. Under a valid action this cannot
// happen; seeing it means an action that failed (or skipped) validation
// is being used, so it is a hard error rather than a recoverable one.
var ErrNoApplicableEffect = errors.New("no applicable effect")

// Action is an ordered list of guarded effects. For an action to be valid
// over a state space, the effect guards must partition the space: every
// state satisfies exactly one discriminant, so the governing effect is
// always unambiguous even though its consequents are nondeterministic.
type Action struct {
	Name    string
	Effects []Effect
}

// IsValid reports whether every effect is locally normalized and the
// effect discriminants partition space — each state satisfied by exactly
// one effect. Zero or two-plus matching effects both invalidate.
func (a Action) IsValid(space *StateSpace) bool {
	for _, e := range a.Effects {
		if !e.IsLocallyNormalized() {
			return false
		}
	}
	for _, s := range space.States() {
		matched := 0
		for _, e := range a.Effects {
			if e.Satisfies(s) {
				matched++
				if matched > 1 {
					break
				}
			}
		}
		if matched != 1 {
			return false
		}
	}
	return true
}

// FindApplicableEffect returns the first effect, in declaration order,
// whose discriminant s satisfies. For a valid action the answer is unique
// and the order tie-break is irrelevant; it only matters while debugging
// an action that has not been proven valid. Errors with
// ErrNoApplicableEffect when no effect matches.
func (a Action) FindApplicableEffect(s State) (Effect, error) {
	for _, e := range a.Effects {
		if e.Satisfies(s) {
			return e, nil
		}
	}
	return Effect{}, fmt.Errorf("action %q on state %v: %w", a.Name, s, ErrNoApplicableEffect)
}

func (a Action) String() string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("action[%d effects]", len(a.Effects))
}

package possplan

// Problem bundles what a search needs: an initial possibility distribution,
// the available actions in declaration order, and a goal condition. A state
// is a goal state when it contains every goal proposition — non-strict
// containment, so a state holding exactly the goal propositions qualifies.
type Problem struct {
	Initial *Dist
	Actions []Action
	Goal    PropSet
}

func NewProblem(initial *Dist, actions []Action, goal PropSet) *Problem {
	return &Problem{Initial: initial, Actions: actions, Goal: goal}
}

// Space returns the state space the problem ranges over, taken from the
// initial distribution.
func (p *Problem) Space() *StateSpace { return p.Initial.Space() }

// IsValid reports whether the problem is structurally sound: the initial
// distribution is valid, every action is valid over the space, and at
// least one state in the space satisfies the goal. A goal no state can
// satisfy makes the problem unsatisfiable by construction.
func (p *Problem) IsValid() bool {
	if !p.Initial.IsValid() {
		return false
	}
	for _, a := range p.Actions {
		if !a.IsValid(p.Space()) {
			return false
		}
	}
	return p.GoalStates().Size() > 0
}

// GoalStates returns every state in the space satisfying the goal.
func (p *Problem) GoalStates() StateSet {
	goal := NewStateSet()
	for _, s := range p.Space().States() {
		if s.Contains(p.Goal) {
			goal.Add(s)
		}
	}
	return goal
}

package possplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWalkProblem() *Problem {
	space, states := walkWorld()
	initial := NewDist(space)
	initial.Set(states[0], 1)
	actions := []Action{
		moveAction("move_0_1", "at-0", "at-1", 0.25),
		moveAction("move_1_2", "at-1", "at-2", 0),
	}
	return NewProblem(initial, actions, NewPropSet("at-2"))
}

func TestProblemIsValid(t *testing.T) {
	assert.True(t, validWalkProblem().IsValid())
}

func TestProblemInvalidInitial(t *testing.T) {
	p := validWalkProblem()
	p.Initial = NewDist(p.Space()) // empty, not normalized
	assert.False(t, p.IsValid())
}

func TestProblemInvalidAction(t *testing.T) {
	p := validWalkProblem()
	p.Actions = append(p.Actions, Action{Name: "gap", Effects: []Effect{
		{PositiveDiscriminants: NewPropSet("alive"), NegativeDiscriminants: NewPropSet(), Consequents: noopConsequents()},
	}})
	assert.False(t, p.IsValid())
}

func TestProblemUnsatisfiableGoal(t *testing.T) {
	p := validWalkProblem()
	p.Goal = NewPropSet("at-3")
	assert.False(t, p.IsValid())
}

func TestGoalStates(t *testing.T) {
	p := validWalkProblem()
	_, states := walkWorld()

	goal := p.GoalStates()
	require.Equal(t, 2, goal.Size())
	assert.True(t, goal.Has(states[4]))
	assert.True(t, goal.Has(states[5]))
}

func TestGoalSatisfiedByExactMatch(t *testing.T) {
	// A state holding exactly the goal propositions is a goal state:
	// the containment test is non-strict.
	lone := NewState("done")
	space := NewStateSpace(lone)
	initial := NewDist(space)
	initial.Set(lone, 1)

	identity := Action{Name: "identity", Effects: []Effect{
		{PositiveDiscriminants: NewPropSet(), NegativeDiscriminants: NewPropSet(), Consequents: noopConsequents()},
	}}
	p := NewProblem(initial, []Action{identity}, NewPropSet("done"))

	assert.True(t, p.IsValid())
	assert.True(t, p.GoalStates().Has(lone))
}

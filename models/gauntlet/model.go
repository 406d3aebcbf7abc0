// Package gauntlet builds a small hand-made possibilistic planning problem:
// a 3-position linear world with an "alive" flag.
//
// States (6): at-0..at-2, each alive or dead.
//
// Actions:
//
//	move_0_1: from (alive, at-0) moves to at-1 with full plausibility, but
//	          dying in place has plausibility 0.25. No-op when dead or not
//	          at position 0.
//	move_1_2: from (alive, at-1) moves to at-2, no death branch. No-op
//	          when dead or not at position 1.
//
// Dead states are absorbing: every action's dead branch is a no-op. The
// goal is reaching at-2, so with gamma 0.5 the only acceptable plan is
// [move_0_1, move_1_2].
package gauntlet

import "possplan"

const (
	Alive = possplan.Proposition("alive")
	At0   = possplan.Proposition("at-0")
	At1   = possplan.Proposition("at-1")
	At2   = possplan.Proposition("at-2")
)

// Gamma is the necessity threshold the scenario is meant to be run with.
const Gamma = 0.5

func noop() []possplan.Consequent {
	return []possplan.Consequent{{
		Plausibility: 1,
		Additions:    possplan.NewPropSet(),
		Deletions:    possplan.NewPropSet(),
	}}
}

func move(from, to possplan.Proposition, deathPlausibility float64) possplan.Action {
	consequents := []possplan.Consequent{{
		Plausibility: 1,
		Additions:    possplan.NewPropSet(to),
		Deletions:    possplan.NewPropSet(from),
	}}
	if deathPlausibility > 0 {
		consequents = append(consequents, possplan.Consequent{
			Plausibility: deathPlausibility,
			Additions:    possplan.NewPropSet(),
			Deletions:    possplan.NewPropSet(Alive),
		})
	}
	return possplan.Action{
		Name: "move_" + string(from[3:]) + "_" + string(to[3:]),
		Effects: []possplan.Effect{
			// No-op if dead.
			{
				PositiveDiscriminants: possplan.NewPropSet(),
				NegativeDiscriminants: possplan.NewPropSet(Alive),
				Consequents:           noop(),
			},
			// No-op if not at the source position.
			{
				PositiveDiscriminants: possplan.NewPropSet(Alive),
				NegativeDiscriminants: possplan.NewPropSet(from),
				Consequents:           noop(),
			},
			// Otherwise move.
			{
				PositiveDiscriminants: possplan.NewPropSet(Alive, from),
				NegativeDiscriminants: possplan.NewPropSet(),
				Consequents:           consequents,
			},
		},
	}
}

// Space returns the six-state space of the gauntlet world.
func Space() *possplan.StateSpace {
	return possplan.NewStateSpace(
		possplan.NewState(At0, Alive),
		possplan.NewState(At0),
		possplan.NewState(At1, Alive),
		possplan.NewState(At1),
		possplan.NewState(At2, Alive),
		possplan.NewState(At2),
	)
}

// Problem returns the gauntlet planning problem: certainly alive at
// position 0, goal at-2.
func Problem() *possplan.Problem {
	space := Space()
	initial := possplan.NewDist(space)
	initial.Set(possplan.NewState(At0, Alive), 1)

	actions := []possplan.Action{
		move(At0, At1, 0.25),
		move(At1, At2, 0),
	}
	return possplan.NewProblem(initial, actions, possplan.NewPropSet(At2))
}

package possplan

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrSearchBudget reports that the search hit its configured node budget
// before either finding a plan or exhausting the frontier. Distinct from
// the legitimate "no plan exists" outcome, which is not an error.
var ErrSearchBudget = errors.New("search node budget exhausted")

// SearchStats counts what a search did.
type SearchStats struct {
	Expanded     int // nodes dequeued and goal-tested
	Enqueued     int // nodes pushed onto the frontier (initial included)
	Deduped      int // successor distributions dropped as already seen
	FrontierPeak int // largest frontier size observed
}

// Result is the outcome of a plan search.
type Result struct {
	// Plan is the shortest gamma-acceptable action sequence, nil when
	// Found is false. An empty non-nil plan means the initial
	// distribution already satisfies the goal test.
	Plan  []Action
	Found bool
	// Necessity is the goal necessity of the accepting distribution
	// (zero when Found is false).
	Necessity Plausibility
	Stats     SearchStats
}

// Planner runs breadth-first search over the space of reachable
// distributions. Nodes are (distribution, plan-so-far) pairs; the frontier
// is strict FIFO and already-seen distributions (by value equality) are
// never re-enqueued, which guarantees termination: the reachable
// distributions are finitely many because the state space is finite and
// the max/min propagation formulas are deterministic.
type Planner struct {
	// MaxNodes bounds how many nodes may be expanded; 0 means unbounded.
	// The core defines no timeout of its own, so this is the knob for
	// callers wanting bounded search.
	MaxNodes int
	// Logger receives per-expansion debug output; nil disables logging.
	Logger *zap.Logger

	problem *Problem
}

func NewPlanner(p *Problem) *Planner {
	return &Planner{problem: p}
}

type searchNode struct {
	dist *Dist
	plan []Action
}

// FindPlan returns the shortest plan whose necessity of reaching the goal
// is at least gamma. Shortest is by construction of BFS: the first node in
// FIFO order passing the goal test has the fewest actions. An exhausted
// frontier yields Found == false with a nil error — a first-class negative
// result, not a failure. The only error conditions are a broken action
// invariant surfacing as ErrNoApplicableEffect and the MaxNodes budget.
//
// Given identical inputs the search is fully deterministic: actions expand
// in declaration order and the reduction operators are max and min.
func (pl *Planner) FindPlan(gamma Plausibility) (Result, error) {
	log := pl.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if gamma < 0 || gamma > 1 {
		return Result{}, fmt.Errorf("gamma %v outside [0,1]", gamma)
	}

	goalStates := pl.problem.GoalStates()
	stats := SearchStats{}

	frontier := []searchNode{{dist: pl.problem.Initial}}
	seen := map[string]struct{}{pl.problem.Initial.Key(): {}}
	stats.Enqueued = 1
	stats.FrontierPeak = 1

	for len(frontier) > 0 {
		node := frontier[0]
		frontier = frontier[1:]

		if pl.MaxNodes > 0 && stats.Expanded >= pl.MaxNodes {
			return Result{Stats: stats}, fmt.Errorf("after %d nodes: %w", stats.Expanded, ErrSearchBudget)
		}
		stats.Expanded++

		necessity := NecessityOfSet(goalStates, node.dist)
		log.Debug("expanding node",
			zap.Int("depth", len(node.plan)),
			zap.Float64("goal_necessity", necessity),
			zap.String("distribution", node.dist.String()))
		if necessity >= gamma {
			if node.plan == nil {
				node.plan = []Action{}
			}
			return Result{Plan: node.plan, Found: true, Necessity: necessity, Stats: stats}, nil
		}

		for _, a := range pl.problem.Actions {
			next, err := NextPossibility(node.dist, a)
			if err != nil {
				return Result{Stats: stats}, err
			}
			key := next.Key()
			if _, dup := seen[key]; dup {
				stats.Deduped++
				continue
			}
			seen[key] = struct{}{}
			plan := make([]Action, 0, len(node.plan)+1)
			plan = append(plan, node.plan...)
			plan = append(plan, a)
			frontier = append(frontier, searchNode{dist: next, plan: plan})
			stats.Enqueued++
			if len(frontier) > stats.FrontierPeak {
				stats.FrontierPeak = len(frontier)
			}
		}
	}

	log.Debug("frontier exhausted", zap.Int("expanded", stats.Expanded))
	return Result{Stats: stats}, nil
}

// Search is the one-call convenience wrapper: validate nothing, run an
// unbounded unlogged BFS on problem with the given threshold.
func Search(problem *Problem, gamma Plausibility) (Result, error) {
	return NewPlanner(problem).FindPlan(gamma)
}

package possplan

import (
	"fmt"
	"strings"
)

// ReachabilityDOT renders the distribution-reachability graph of a problem
// as Graphviz DOT: one node per distinct reachable distribution, one edge
// per action application. The exploration mirrors the search engine's BFS
// (FIFO frontier, value-equality dedupe) up to maxDepth action steps, so
// the drawing is exactly the space the planner would traverse. Goal-
// satisfying nodes (necessity ≥ gamma) are drawn as double circles.
func ReachabilityDOT(problem *Problem, gamma Plausibility, maxDepth int) (string, error) {
	goalStates := problem.GoalStates()

	type node struct {
		dist  *Dist
		depth int
	}
	ids := map[string]int{problem.Initial.Key(): 0}
	nodes := []node{{dist: problem.Initial}}
	type edge struct {
		from, to int
		action   string
	}
	var edges []edge

	frontier := []int{0}
	for len(frontier) > 0 {
		i := frontier[0]
		frontier = frontier[1:]
		if nodes[i].depth >= maxDepth {
			continue
		}
		for _, a := range problem.Actions {
			next, err := NextPossibility(nodes[i].dist, a)
			if err != nil {
				return "", err
			}
			key := next.Key()
			j, known := ids[key]
			if !known {
				j = len(nodes)
				ids[key] = j
				nodes = append(nodes, node{dist: next, depth: nodes[i].depth + 1})
				frontier = append(frontier, j)
			}
			edges = append(edges, edge{from: i, to: j, action: a.String()})
		}
	}

	var sb strings.Builder
	sb.WriteString("digraph Reachability {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")
	sb.WriteString("  start [shape=point];\n")
	sb.WriteString("  start -> d0;\n")
	sb.WriteString("\n")

	for i, n := range nodes {
		shape := ""
		if NecessityOfSet(goalStates, n.dist) >= gamma {
			shape = ", shape=doublecircle"
		}
		sb.WriteString(fmt.Sprintf("  d%d [label=\"%s\"%s];\n", i, escapeDOT(distLabel(n.dist)), shape))
	}
	sb.WriteString("\n")
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  d%d -> d%d [label=\"%s\"];\n", e.from, e.to, escapeDOT(e.action)))
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

func distLabel(d *Dist) string {
	parts := make([]string, 0, 4)
	for _, s := range d.sortedNonZero() {
		names := make([]string, 0, 2)
		for _, p := range s.Props() {
			names = append(names, string(p))
		}
		parts = append(parts, fmt.Sprintf("%s: %g", strings.Join(names, ","), d.Get(s)))
	}
	return strings.Join(parts, "\\n")
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

package toposort

import "github.com/Dineth14/graphkit/core"

// Kahn produces a topological ordering by repeatedly emitting a vertex with
// no remaining incoming edges.
//
// The queue is seeded with all in-degree-zero vertices in lexicographic
// order, so the ordering is deterministic for a given graph. Emitting a
// vertex decrements the in-degree of each successor; successors that reach
// zero join the queue immediately. If the loop drains before every vertex
// is emitted, the unemitted remainder all sit on cycles and the result is
// ErrCycleDetected.
//
// Complexity: O(V log V + E) time (the log factor is the seed sort),
// O(V) extra space.
func Kahn(g *core.Graph) ([]string, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	indeg := inDegrees(g)

	queue := make([]string, 0, len(indeg))
	for _, v := range g.Vertices() {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(indeg))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) < len(indeg) {
		return nil, ErrCycleDetected
	}

	return order, nil
}

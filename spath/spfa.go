// Package spath: SPFA, the work-queue variant of Bellman-Ford.
package spath

import (
	"fmt"

	"github.com/Dineth14/graphkit/core"
)

// SPFA computes shortest distances from source using the Shortest Path
// Faster Algorithm: only vertices whose distance just improved are
// re-enqueued for relaxation, and a vertex already queued is not queued
// twice.
//
// Cycle detection is cost-bounded by the same canonical |V|-1 bound
// Bellman-Ford uses: if any single vertex's distance improves more than
// |V|-1 times over the call's lifetime, a negative cycle must exist and the
// call fails immediately with ErrNegativeCycle. This bounds worst-case work
// and makes SPFA's failure behavior identical to BellmanFord's on the same
// input.
//
// Complexity: O(V·E) time worst case (often far less in practice),
// O(V + E) memory.
func SPFA(g *core.Graph, source string) (map[string]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	vertices := g.Vertices()
	n := len(vertices)
	dist := make(map[string]int64, n)
	inQueue := make(map[string]bool, n)
	relaxCount := make(map[string]int, n)
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	maxRelax := n - 1
	if maxRelax < 0 {
		maxRelax = 0
	}

	queue := make([]string, 0, n)
	queue = append(queue, source)
	inQueue[source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("spath: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			w := edgeWeight(g, e)
			nd := dist[u] + w
			if nd >= dist[e.To] {
				continue
			}
			dist[e.To] = nd
			relaxCount[e.To]++
			if relaxCount[e.To] > maxRelax {
				return nil, fmt.Errorf("%w: vertex %q relaxed %d times", ErrNegativeCycle, e.To, relaxCount[e.To])
			}
			if !inQueue[e.To] {
				queue = append(queue, e.To)
				inQueue[e.To] = true
			}
		}
	}

	return dist, nil
}

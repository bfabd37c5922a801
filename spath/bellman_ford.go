// Package spath: Bellman-Ford relaxation with post-scan cycle proof.
package spath

import (
	"fmt"

	"github.com/Dineth14/graphkit/core"
)

// BellmanFord computes shortest distances from source, tolerating negative
// edge weights.
//
// The algorithm performs up to |V|-1 relaxation rounds over all arcs and
// stops early when a full round produces no update (fixed point reached).
// One further full scan follows: an arc that can still be relaxed proves a
// negative cycle reachable from the source, and the call fails with
// ErrNegativeCycle identifying the offending edge.
//
// Vertices still at Unreachable are skipped during relaxation, so sentinel
// arithmetic can never corrupt a real distance.
//
// Complexity: O(V·E) time worst case, O(V + E) memory.
func BellmanFord(g *core.Graph, source string) (map[string]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	steps := arcs(g)

	// Up to |V|-1 rounds; each round can only extend the frontier by one
	// edge, so a fixed point within that bound is guaranteed cycle-free.
	for round := 0; round < len(vertices)-1; round++ {
		changed := false
		for _, a := range steps {
			if dist[a.from] == Unreachable {
				continue
			}
			if nd := dist[a.from] + a.weight; nd < dist[a.to] {
				dist[a.to] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Post-check: any arc still relaxable proves a reachable negative cycle.
	for _, a := range steps {
		if dist[a.from] == Unreachable {
			continue
		}
		if dist[a.from]+a.weight < dist[a.to] {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeCycle, a.from, a.to, a.weight)
		}
	}

	return dist, nil
}

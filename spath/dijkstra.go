// Package spath: Dijkstra's algorithm with a lazy-decrease-key binary heap.
package spath

import (
	"container/heap"
	"fmt"

	"github.com/Dineth14/graphkit/core"
)

// Dijkstra computes shortest distances from source to all other vertices.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Unreachable if the
//     source cannot reach it).
//   - prev: predecessor map when WithReturnPath or WithTarget was supplied,
//     nil otherwise. prev[v] == u means the shortest path to v arrives via u.
//   - err:  ErrGraphNil, ErrSourceNotFound, or ErrNegativeWeight.
//
// Preconditions are checked in order, before any relaxation:
//  1. g must be non-nil (ErrGraphNil).
//  2. g must contain source (ErrSourceNotFound).
//  3. No edge may carry a negative weight (ErrNegativeWeight, eager scan).
//
// With WithTarget(t), the search stops the moment t is popped from the heap:
// its distance is final at that point and no further vertex is explored.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrSourceNotFound
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Eager scan: fail fast on any negative weight, before doing any work.
	for _, e := range g.Edges() {
		if edgeWeight(g, e) < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}

	visited := make(map[string]bool, len(vertices))
	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// A popped distance above the recorded one is a stale lazy-decrease
		// entry; discard it without effect.
		if visited[u] || item.dist > dist[u] {
			continue
		}
		visited[u] = true

		if cfg.Target != "" && u == cfg.Target {
			break
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("spath: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			w := edgeWeight(g, e)
			newDist := dist[u] + w
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			if prev != nil {
				prev[e.To] = u
			}
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev, nil
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improvement
// pushes a new entry instead of decreasing the old key; stale entries are
// discarded when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

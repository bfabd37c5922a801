package search

import (
	"sort"

	"github.com/Dineth14/graphkit/core"
)

// EulerianPath finds a walk traversing every edge exactly once, or reports
// that none exists by returning (nil, nil).
//
// Existence is the degree-parity rule: a path exists only when zero or
// exactly two vertices have odd degree. Construction is Hierholzer's
// edge-removal walk over a private adjacency multiset (the caller's graph
// is never touched), started from the smallest odd-degree vertex when one
// exists, else from the smallest vertex carrying edges. Graphs whose edges
// split across components have no single walk and also yield (nil, nil).
//
// Complexity: O(V + E·Δ) time where Δ is the maximum degree (each edge
// removal scans one adjacency list), O(V + E) space.
func EulerianPath(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirected
	}
	if g.EdgeCount() == 0 {
		return nil, nil
	}

	// Private multiset copy: parallel edges keep their multiplicity,
	// self-loops appear twice under their vertex.
	adjacency := make(map[string][]string, g.VertexCount())
	degree := make(map[string]int, g.VertexCount())
	for _, e := range g.Edges() {
		adjacency[e.From] = append(adjacency[e.From], e.To)
		adjacency[e.To] = append(adjacency[e.To], e.From)
		degree[e.From]++
		degree[e.To]++
	}

	var odd []string
	for v, d := range degree {
		if d%2 == 1 {
			odd = append(odd, v)
		}
	}
	if len(odd) != 0 && len(odd) != 2 {
		return nil, nil
	}

	start := ""
	if len(odd) == 2 {
		sort.Strings(odd)
		start = odd[0]
	} else {
		for _, v := range g.Vertices() {
			if degree[v] > 0 {
				start = v
				break
			}
		}
	}

	// Hierholzer: walk until stuck, backtrack emitting vertices, splicing
	// closed sub-walks as they complete.
	stack := []string{start}
	var trail []string
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if len(adjacency[v]) > 0 {
			u := adjacency[v][len(adjacency[v])-1]
			adjacency[v] = adjacency[v][:len(adjacency[v])-1]
			removeOne(adjacency, u, v)
			stack = append(stack, u)

			continue
		}
		trail = append(trail, v)
		stack = stack[:len(stack)-1]
	}

	// A walk short of every edge means the edges span several components.
	if len(trail) != g.EdgeCount()+1 {
		return nil, nil
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail, nil
}

// removeOne deletes a single occurrence of target from adjacency[v].
func removeOne(adjacency map[string][]string, v, target string) {
	list := adjacency[v]
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == target {
			adjacency[v] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

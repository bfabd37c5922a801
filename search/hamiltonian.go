package search

import "github.com/Dineth14/graphkit/core"

// HamiltonianPath finds a path visiting every vertex exactly once, or
// reports that none exists by returning (nil, nil).
//
// The search is plain backtracking pruned by adjacency, retried from every
// vertex in lexicographic order, so the first path found is deterministic.
// Worst case is exponential in the vertex count; keep the input small.
func HamiltonianPath(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, nil
	}

	visited := make(map[string]bool, len(vertices))
	path := make([]string, 0, len(vertices))

	var extend func(u string) bool
	extend = func(u string) bool {
		visited[u] = true
		path = append(path, u)

		if len(path) == len(vertices) {
			return true
		}

		next, err := g.NeighborIDs(u)
		if err == nil {
			for _, v := range next {
				if visited[v] {
					continue
				}
				if extend(v) {
					return true
				}
			}
		}

		visited[u] = false
		path = path[:len(path)-1]

		return false
	}

	for _, start := range vertices {
		if extend(start) {
			return path, nil
		}
	}

	return nil, nil
}

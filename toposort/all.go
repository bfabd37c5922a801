package toposort

import "github.com/Dineth14/graphkit/core"

// All enumerates every topological ordering of the graph by backtracking:
// at each step it branches over every vertex that is still unused and has
// no remaining incoming edges, in lexicographic order, so the enumeration
// itself is lexicographic.
//
// The count of orderings is factorial in the worst case (a graph with no
// edges has V! of them), so All is meant for small graphs only. A cyclic
// graph never completes an ordering and yields an empty result, not an
// error.
func All(g *core.Graph) ([][]string, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	indeg := inDegrees(g)
	used := make(map[string]bool, len(vertices))
	order := make([]string, 0, len(vertices))

	var results [][]string
	var descend func()
	descend = func() {
		if len(order) == len(vertices) {
			results = append(results, append([]string(nil), order...))
			return
		}

		for _, v := range vertices {
			if used[v] || indeg[v] != 0 {
				continue
			}

			used[v] = true
			order = append(order, v)
			edges, _ := g.Neighbors(v)
			for _, e := range edges {
				indeg[e.To]--
			}

			descend()

			for _, e := range edges {
				indeg[e.To]++
			}
			order = order[:len(order)-1]
			used[v] = false
		}
	}
	descend()

	return results, nil
}

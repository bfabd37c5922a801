package mst

import (
	"sort"

	"github.com/Dineth14/graphkit/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in ascending
// weight order and keeping those that join two distinct components.
//
// The sort is stable over the graph's edge insertion order, so equal-weight
// ties always break the same way for a given construction sequence. The
// scan stops early once |V|-1 edges are kept. On disconnected input the
// result is a minimum spanning forest covering every component, with fewer
// than |V|-1 edges and no error.
//
// Returns the kept edges and their total weight.
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edgeWeight(g, edges[i]) < edgeWeight(g, edges[j])
	})

	want := g.VertexCount() - 1
	uf := NewUnionFind(g.Vertices())

	tree := make([]core.Edge, 0, max(want, 0))
	var total int64
	for _, e := range edges {
		if e.From == e.To {
			continue // self-loop never spans
		}
		if !uf.Union(e.From, e.To) {
			continue
		}
		tree = append(tree, e)
		total += edgeWeight(g, e)
		if len(tree) == want {
			break
		}
	}

	return tree, total, nil
}

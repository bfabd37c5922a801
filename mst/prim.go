package mst

import (
	"container/heap"

	"github.com/Dineth14/graphkit/core"
)

// frontierEdge is a candidate tree edge waiting in Prim's heap.
type frontierEdge struct {
	edge   core.Edge
	weight int64
}

// frontier is a min-heap of candidate edges keyed by weight.
type frontier []frontierEdge

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].weight < f[j].weight }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEdge)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// Prim grows a minimum spanning tree outward from root. Every edge leaving
// the tree sits in a min-heap; the lightest one whose far end is still
// outside the tree is accepted, and the far end's own edges join the heap.
//
// Stale heap entries (far end absorbed since the push) are skipped on pop
// rather than removed eagerly. If the graph is disconnected the result is
// a partial tree covering only root's component, with no error.
//
// Returns the kept edges and their total weight.
// Complexity: O(E log E) time, O(V + E) space.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	visited := make(map[string]bool, g.VertexCount())
	f := &frontier{}
	heap.Init(f)

	absorb := func(u string) {
		visited[u] = true
		edges, err := g.Neighbors(u)
		if err != nil {
			return
		}
		for _, e := range edges {
			if !visited[e.To] {
				heap.Push(f, frontierEdge{edge: e, weight: edgeWeight(g, e)})
			}
		}
	}
	absorb(root)

	var tree []core.Edge
	var total int64
	for f.Len() > 0 {
		cand := heap.Pop(f).(frontierEdge)
		if visited[cand.edge.To] {
			continue
		}
		tree = append(tree, cand.edge)
		total += cand.weight
		absorb(cand.edge.To)
	}

	return tree, total, nil
}

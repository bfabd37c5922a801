// Package dfs implements depth-first search (single-source and forest) on a
// core.Graph, with cancellation, pre-/post-order hooks, depth and neighbor
// limits, and full-graph traversal.
//
// The traversal uses an explicit frame stack rather than recursion, so
// degenerate chains tens of thousands of vertices deep cannot overflow the
// goroutine stack. A vertex already visited is never re-expanded, so cycles
// and multiple paths to the same vertex are tolerated.
//
// Like bfs, a start vertex absent from the graph is a documented soft edge
// case: the result is a singleton traversal containing only the start.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

import (
	"fmt"

	"github.com/Dineth14/graphkit/core"
)

// frame is one suspended level of the iterative DFS: a vertex plus a cursor
// into its outgoing edges, resumable after descending into a child.
type frame struct {
	id    string
	depth int
	edges []core.Edge
	next  int
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	stack []frame
	res   *Result
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all disconnected components; otherwise it explores only from start.
// Returns the traversal Result, or an error if aborted by context or hook.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	res := &Result{
		Order:      make([]string, 0, n),
		Discovered: make([]string, 0, n),
		Depth:      make(map[string]int, n),
		Parent:     make(map[string]string, n),
		Visited:    make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[v] {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.traverse(start); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse runs one DFS tree rooted at root using the explicit frame stack.
func (w *dfsWalker) traverse(root string) error {
	if err := w.discover(root, 0, ""); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++

			if w.res.Visited[e.To] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			// Descend: top may be invalidated by the append below, so no use
			// of it past this point.
			if err := w.discover(e.To, top.depth+1, top.id); err != nil {
				return err
			}
			continue
		}

		// All edges of the top frame consumed: post-order exit.
		done := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(done.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", done.id, err)
			}
		}
		w.res.Order = append(w.res.Order, done.id)
	}

	return nil
}

// discover marks id visited, records metadata, fires the pre-order hook, and
// pushes a resumable frame for it.
func (w *dfsWalker) discover(id string, depth int, parent string) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Discovered = append(w.res.Discovered, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// A start vertex missing from the graph has no adjacency list; the frame
	// carries zero edges and the traversal degenerates to a single visit.
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		edges = nil
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, edges: edges})

	return nil
}

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional hooks, depth limiting, and neighbor filtering. A vertex is marked
// visited at enqueue time, not at dequeue time, which guarantees each vertex
// enqueues at most once even when reachable over many paths.
//
// A start vertex absent from the graph is not an error: the result is a
// singleton traversal containing only the start at depth 0. Callers that
// need strict membership should check graph.HasVertex first.
package bfs

import (
	"context"
	"fmt"

	"github.com/Dineth14/graphkit/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or any error surfaced by a user-supplied hook. Edge weights, if present,
// are ignored: BFS measures distance in edges.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and surface any invalid one immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with the start vertex (no parent). A start that is missing
	// from the graph yields a singleton traversal: the loop below finds no
	// neighbors for it and terminates after one visit.
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		// Vertex absent from the graph: no neighbors, nothing to expand.
		return
	}
	for _, e := range neighbors {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.id)
		}
	}
}

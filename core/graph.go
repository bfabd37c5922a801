// Package core: Graph mutation and query methods.
package core

import "sort"

// Directed reports whether edges default to one-way orientation.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the vertex set and bootstraps its
// adjacency bucket. Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// AddEdge inserts an edge u→v with weight w, creating either endpoint if it
// does not exist yet. On an undirected graph the mirrored edge v→u becomes
// visible in the same call, before AddEdge returns: both directions are
// inserted under one lock acquisition, so no reader can observe one half.
//
// Errors:
//   - ErrEmptyVertexID  if u or v is empty.
//   - ErrBadWeight      if w != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if u == v and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if w != 0 && !g.weighted {
		return ErrBadWeight
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	e := Edge{From: u, To: v, Weight: w}
	g.adjacency[u] = append(g.adjacency[u], e)
	if !g.directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Edge{From: v, To: u, Weight: w})
	}
	g.edges = append(g.edges, e)

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether at least one edge u→v exists.
// On undirected graphs the mirrored direction counts as well.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[u] {
		if e.To == v {
			return true
		}
	}

	return false
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is a fresh copy owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Edges returns every inserted edge exactly once, in insertion order,
// oriented as inserted. The slice is a fresh copy owned by the caller.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of inserted edges (mirrored halves of
// undirected edges are not double-counted).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the outgoing edges of u in insertion order.
// For undirected graphs this includes the mirrored halves of edges inserted
// with u as the target. The slice is a fresh copy owned by the caller.
// Returns ErrVertexNotFound if u does not exist.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// NeighborIDs returns the target IDs of u's outgoing edges, in insertion
// order, one entry per edge (parallel edges repeat their target).
// Returns ErrVertexNotFound if u does not exist.
func (g *Graph) NeighborIDs(u string) ([]string, error) {
	edges, err := g.Neighbors(u)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// Clone returns a deep copy of the graph: same flags, same vertices, same
// edges. Mutating the clone never affects the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string][]Edge, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, adj := range g.adjacency {
		c.adjacency[id] = append([]Edge(nil), adj...)
	}
	copy(c.edges, g.edges)

	return c
}

// Reverse returns a new graph with every directed edge flipped (To→From).
// For undirected graphs Reverse is equivalent to Clone, since every edge is
// already bidirectional. Vertex set and flags are preserved.
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	directed := g.directed
	g.mu.RUnlock()

	if !directed {
		return g.Clone()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		directed:   true,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string][]Edge, len(g.adjacency)),
		edges:      make([]Edge, 0, len(g.edges)),
	}
	for id := range g.vertices {
		r.vertices[id] = struct{}{}
		r.adjacency[id] = nil
	}
	for _, e := range g.edges {
		flipped := Edge{From: e.To, To: e.From, Weight: e.Weight}
		r.adjacency[flipped.From] = append(r.adjacency[flipped.From], flipped)
		r.edges = append(r.edges, flipped)
	}

	return r
}

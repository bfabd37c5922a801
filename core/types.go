// Package core: type declarations, sentinel errors, and the NewGraph
// constructor with its functional options.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was supplied as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge represents a connection between two vertices.
//
// For undirected graphs every AddEdge(u, v, w) call stores the mirrored
// counterpart in v's adjacency list as well, but Edges() reports the edge
// once, oriented as inserted.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge. Always 0 on unweighted graphs.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes all edges one-way (From→To).
// The default is undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory adjacency-list graph shared by all algorithm
// packages. The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// Configuration flags, immutable after NewGraph.
	directed   bool // all edges one-way when true
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	vertices map[string]struct{} // vertex set

	// adjacency[u] lists outgoing edges of u in insertion order.
	// Undirected edges appear in both endpoint lists.
	adjacency map[string][]Edge

	// edges records each successful AddEdge call exactly once, oriented as
	// inserted. This is the deterministic enumeration surface for Edges().
	edges []Edge
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, and rejects self-loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

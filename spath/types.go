// Package spath: shared sentinels, options, and arc expansion helpers for
// the shortest-path family.
package spath

import (
	"errors"
	"math"

	"github.com/Dineth14/graphkit/core"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Sentinel errors shared across the family.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spath: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent from
	// the graph's vertex set.
	ErrSourceNotFound = errors.New("spath: source vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge carries a
	// negative weight. Detection is eager: no relaxation happens first.
	ErrNegativeWeight = errors.New("spath: negative edge weight encountered")

	// ErrNegativeCycle is returned by BellmanFord, SPFA, and FloydWarshall
	// when a negative-weight cycle is provable. Distances are withheld
	// because they would be unbounded below.
	ErrNegativeCycle = errors.New("spath: negative-weight cycle detected")
)

// Option configures Dijkstra via functional arguments.
type Option func(*Options)

// Options holds Dijkstra's tunable parameters.
type Options struct {
	// ReturnPath requests the predecessor map for path reconstruction.
	ReturnPath bool

	// Target, if non-empty, stops the search the moment Target's distance is
	// finalized (popped from the heap). Implies ReturnPath.
	Target string
}

// DefaultOptions returns Options with no target and no predecessor map.
func DefaultOptions() Options {
	return Options{}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithTarget enables early termination once target is finalized, and turns
// on predecessor tracking so the path can be reconstructed.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
		o.ReturnPath = true
	}
}

// arc is one directed relaxation step u→v with weight w. Undirected edges
// expand into two arcs.
type arc struct {
	from, to string
	weight   int64
}

// arcs flattens the graph into directed relaxation steps. On unweighted
// graphs every arc carries unit weight (the documented default).
// The order is deterministic: insertion order, mirrored halves adjacent.
func arcs(g *core.Graph) []arc {
	edges := g.Edges()
	directed := g.Directed()
	unit := !g.Weighted()

	out := make([]arc, 0, len(edges)*2)
	for _, e := range edges {
		w := e.Weight
		if unit {
			w = 1
		}
		out = append(out, arc{from: e.From, to: e.To, weight: w})
		if !directed && e.From != e.To {
			out = append(out, arc{from: e.To, to: e.From, weight: w})
		}
	}

	return out
}

// edgeWeight returns the effective weight of e under g's weight mode.
func edgeWeight(g *core.Graph, e core.Edge) int64 {
	if !g.Weighted() {
		return 1
	}

	return e.Weight
}

// PathTo reconstructs the source→dest path from a predecessor map produced
// by Dijkstra with WithReturnPath or WithTarget. Returns nil if dest was
// never reached.
func PathTo(prev map[string]string, source, dest string) []string {
	if dest != source {
		if _, ok := prev[dest]; !ok {
			return nil
		}
	}
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

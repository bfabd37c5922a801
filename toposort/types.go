package toposort

import (
	"errors"

	"github.com/Dineth14/graphkit/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrNotDirected is returned for undirected graphs, whose mirrored
	// edges make every adjacency a two-vertex cycle.
	ErrNotDirected = errors.New("toposort: graph must be directed")

	// ErrCycleDetected is returned when the graph contains a directed
	// cycle and therefore admits no topological ordering.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// validate rejects inputs no engine can order.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrNotDirected
	}

	return nil
}

// inDegrees counts incoming edges per vertex. Every vertex appears as a key,
// including pure sources and vertices that only ever occur as edge targets.
func inDegrees(g *core.Graph) map[string]int {
	indeg := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		indeg[v] = 0
	}
	for _, e := range g.Edges() {
		indeg[e.To]++
	}

	return indeg
}

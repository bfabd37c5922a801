package mst

import (
	"errors"

	"github.com/Dineth14/graphkit/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirected is returned for directed graphs; spanning trees are an
	// undirected notion here.
	ErrDirected = errors.New("mst: graph must be undirected")

	// ErrRootNotFound is returned by Prim when the root vertex is absent.
	ErrRootNotFound = errors.New("mst: root vertex not found")
)

func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirected
	}

	return nil
}

// edgeWeight returns the effective weight of e under g's weight mode.
func edgeWeight(g *core.Graph, e core.Edge) int64 {
	if !g.Weighted() {
		return 1
	}

	return e.Weight
}

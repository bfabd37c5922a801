package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dineth14/graphkit/core"
)

// TestAddEdge_Undirected verifies that one AddEdge call makes both directions
// visible, while Edges() still reports the edge once.
func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))

	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
	require.Equal(t, 1, g.EdgeCount())

	nbrA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrA, 1)
	require.Equal(t, "B", nbrA[0].To)

	nbrB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nbrB, 1)
	require.Equal(t, "A", nbrB[0].To)
}

// TestAddEdge_Directed verifies one-way insertion on directed graphs.
func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))

	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}

// TestAddEdge_AutoVertices verifies that edge endpoints are registered as
// vertices, so no "dangling" targets exist.
func TestAddEdge_AutoVertices(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("X", "Y", 0))

	require.True(t, g.HasVertex("X"))
	require.True(t, g.HasVertex("Y"))
	require.Equal(t, []string{"X", "Y"}, g.Vertices())
}

// TestAddEdge_Errors covers the input-validation sentinels.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("", "B", 0), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "B", 7), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	require.NoError(t, gl.AddEdge("A", "A", 0))

	gw := core.NewGraph(core.WithWeighted())
	require.NoError(t, gw.AddEdge("A", "B", 7))
}

// TestEdges_InsertionOrder verifies the deterministic enumeration order that
// Kruskal's stable tie-breaking depends on.
func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("C", "D", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	edges := g.Edges()
	require.Equal(t, []core.Edge{
		{From: "C", To: "D", Weight: 3},
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, edges)
}

// TestNeighbors_Missing verifies the lookup sentinel.
func TestNeighbors_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestClone_Independent verifies deep-copy semantics.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("B", "C", 2))

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	require.False(t, g.HasVertex("C"))
}

// TestReverse_Directed verifies that Reverse flips every edge and keeps the
// vertex set, including isolated vertices.
func TestReverse_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddVertex("Z"))

	r := g.Reverse()
	require.True(t, r.HasEdge("B", "A"))
	require.True(t, r.HasEdge("C", "B"))
	require.False(t, r.HasEdge("A", "B"))
	require.True(t, r.HasVertex("Z"))
	require.Equal(t, g.VertexCount(), r.VertexCount())
}

// TestReverse_Undirected verifies that undirected reversal is a clone.
func TestReverse_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))

	r := g.Reverse()
	require.True(t, r.HasEdge("A", "B"))
	require.True(t, r.HasEdge("B", "A"))
}

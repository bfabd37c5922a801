package scc_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dineth14/graphkit/bfs"
	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/scc"
)

func TestKosaraju_NilGraph(t *testing.T) {
	_, err := scc.Kosaraju(nil)
	require.ErrorIs(t, err, scc.ErrGraphNil)
}

// TestKosaraju_TwoCycles verifies component membership on a graph with two
// cycles joined by a one-way bridge: {A,B,C} → {D,E}, plus isolated F.
func TestKosaraju_TwoCycles(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, // cycle 1
		{"C", "D"},                         // bridge
		{"D", "E"}, {"E", "D"},             // cycle 2
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	require.NoError(t, g.AddVertex("F"))

	components, err := scc.Kosaraju(g)
	require.NoError(t, err)
	require.Len(t, components, 3)

	ids := scc.ComponentIDs(components)
	require.Equal(t, ids["A"], ids["B"])
	require.Equal(t, ids["B"], ids["C"])
	require.Equal(t, ids["D"], ids["E"])
	require.NotEqual(t, ids["A"], ids["D"])
	require.NotEqual(t, ids["A"], ids["F"])
	require.NotEqual(t, ids["D"], ids["F"])

	// Condensation order: the bridge points from an earlier component to a
	// later one.
	require.Less(t, ids["A"], ids["D"])
}

// TestKosaraju_MutualReachability asserts the defining property on a richer
// graph: same component iff u reaches v and v reaches u.
func TestKosaraju_MutualReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	for _, e := range [][2]string{
		{"1", "2"}, {"2", "3"}, {"3", "1"},
		{"3", "4"}, {"4", "5"}, {"5", "6"}, {"6", "4"},
		{"6", "7"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	components, err := scc.Kosaraju(g)
	require.NoError(t, err)
	ids := scc.ComponentIDs(components)

	reaches := func(from, to string) bool {
		res, err := bfs.BFS(g, from)
		require.NoError(t, err)
		_, ok := res.Depth[to]
		return ok
	}
	verts := g.Vertices()
	for _, u := range verts {
		for _, v := range verts {
			mutual := reaches(u, v) && reaches(v, u)
			same := ids[u] == ids[v]
			require.Equal(t, mutual, same, "u=%s v=%s", u, v)
		}
	}
}

// TestKosaraju_AllVerticesCovered verifies every vertex lands in exactly one
// component.
func TestKosaraju_AllVerticesCovered(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))
	require.NoError(t, g.AddVertex("E"))

	components, err := scc.Kosaraju(g)
	require.NoError(t, err)

	var all []string
	for _, comp := range components {
		all = append(all, comp...)
	}
	sort.Strings(all)
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, all)
}

// TestKosaraju_Undirected degenerates to connected components.
func TestKosaraju_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("X", "Y", 0))

	components, err := scc.Kosaraju(g)
	require.NoError(t, err)
	require.Len(t, components, 2)
}

package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/search"
)

func addEdges(t *testing.T, g *core.Graph, edges [][2]string) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
}

func TestHamiltonianPath_Chain(t *testing.T) {
	g := core.NewGraph()
	addEdges(t, g, [][2]string{{"A", "B"}, {"B", "C"}})

	path, err := search.HamiltonianPath(g)
	require.NoError(t, err)
	require.Len(t, path, 3)
	for i := 1; i < len(path); i++ {
		require.True(t, g.HasEdge(path[i-1], path[i]))
	}
}

func TestHamiltonianPath_DirectedChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	addEdges(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	path, err := search.HamiltonianPath(g)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestHamiltonianPath_StarHasNone(t *testing.T) {
	// Three leaves around one hub: any path strands a leaf.
	g := core.NewGraph()
	addEdges(t, g, [][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}})

	path, err := search.HamiltonianPath(g)
	require.NoError(t, err)
	require.Nil(t, path)
}

// requireTrail asserts the walk uses every edge of g exactly once.
func requireTrail(t *testing.T, g *core.Graph, trail []string) {
	t.Helper()
	require.Len(t, trail, g.EdgeCount()+1)

	key := func(u, v string) [2]string {
		if u > v {
			u, v = v, u
		}
		return [2]string{u, v}
	}
	remaining := make(map[[2]string]int, g.EdgeCount())
	for _, e := range g.Edges() {
		remaining[key(e.From, e.To)]++
	}
	for i := 1; i < len(trail); i++ {
		k := key(trail[i-1], trail[i])
		require.Positive(t, remaining[k], "step %s-%s has no edge left", trail[i-1], trail[i])
		remaining[k]--
	}
}

func TestEulerianPath_TwoOddVertices(t *testing.T) {
	// A and C are the odd-degree pair; the walk must start at A.
	g := core.NewGraph()
	addEdges(t, g, [][2]string{{"A", "B"}, {"B", "C"}})

	trail, err := search.EulerianPath(g)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, trail)
}

func TestEulerianPath_AllEven(t *testing.T) {
	g := core.NewGraph()
	addEdges(t, g, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})

	trail, err := search.EulerianPath(g)
	require.NoError(t, err)
	requireTrail(t, g, trail)
	require.Equal(t, trail[0], trail[len(trail)-1])
}

func TestEulerianPath_ParityRuleRejects(t *testing.T) {
	// Four odd-degree vertices: hub (3) and each leaf (1).
	g := core.NewGraph()
	addEdges(t, g, [][2]string{{"hub", "a"}, {"hub", "b"}, {"hub", "c"}})

	trail, err := search.EulerianPath(g)
	require.NoError(t, err)
	require.Nil(t, trail)
}

func TestEulerianPath_SplitComponentsRejected(t *testing.T) {
	// Two disjoint triangles pass the parity rule but share no walk.
	g := core.NewGraph()
	addEdges(t, g, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"X", "Y"}, {"Y", "Z"}, {"Z", "X"},
	})

	trail, err := search.EulerianPath(g)
	require.NoError(t, err)
	require.Nil(t, trail)
}

func TestEulerianPath_Validation(t *testing.T) {
	_, err := search.EulerianPath(nil)
	require.ErrorIs(t, err, search.ErrGraphNil)

	directed := core.NewGraph(core.WithDirected())
	require.NoError(t, directed.AddEdge("A", "B", 0))
	_, err = search.EulerianPath(directed)
	require.ErrorIs(t, err, search.ErrDirected)

	empty := core.NewGraph()
	trail, err := search.EulerianPath(empty)
	require.NoError(t, err)
	require.Nil(t, trail)
}

func TestKnightsTour_FiveByFive(t *testing.T) {
	tour, err := search.KnightsTour(5, 0, 0)
	require.NoError(t, err)
	require.Len(t, tour, 25)

	seen := make(map[[2]int]bool, len(tour))
	for i, sq := range tour {
		require.False(t, seen[sq], "square %v visited twice", sq)
		seen[sq] = true
		if i == 0 {
			require.Equal(t, [2]int{0, 0}, sq)
			continue
		}
		dr := sq[0] - tour[i-1][0]
		dc := sq[1] - tour[i-1][1]
		require.Equal(t, 3, abs(dr)+abs(dc))
		require.True(t, abs(dr) == 1 || abs(dr) == 2)
	}
}

func TestKnightsTour_TinyBoards(t *testing.T) {
	tour, err := search.KnightsTour(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}}, tour)

	tour, err = search.KnightsTour(2, 0, 0)
	require.NoError(t, err)
	require.Nil(t, tour)
}

func TestKnightsTour_Validation(t *testing.T) {
	_, err := search.KnightsTour(0, 0, 0)
	require.ErrorIs(t, err, search.ErrBadBoard)

	_, err = search.KnightsTour(3, 3, 0)
	require.ErrorIs(t, err, search.ErrOffBoard)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

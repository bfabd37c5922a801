package toposort

import "github.com/Dineth14/graphkit/core"

// Vertex colors for the depth-first pass.
const (
	white uint8 = iota // never seen
	gray               // on the current descent path
	black              // fully explored
)

// frame is one explicit-stack level: a vertex and a cursor into its edges.
type frame struct {
	id    string
	edges []core.Edge
	next  int
}

// DFS produces a topological ordering via a three-color depth-first pass.
//
// Vertices are pushed gray on discovery and turn black on exit, at which
// point they are appended to a post-order list; reversing that list yields
// the ordering. Meeting a gray vertex during descent is a back edge, which
// proves a cycle and short-circuits to ErrCycleDetected.
//
// The pass is iterative over an explicit stack, so vertex-count-deep chains
// cannot exhaust goroutine stack space.
func DFS(g *core.Graph) ([]string, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	color := make(map[string]uint8, g.VertexCount())
	post := make([]string, 0, g.VertexCount())

	for _, v := range g.Vertices() {
		if color[v] != white {
			continue
		}
		if cyclic := explore(g, v, color, &post); cyclic {
			return nil, ErrCycleDetected
		}
	}

	// Reverse post-order is the topological order.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}

// HasCycle reports whether the graph contains a directed cycle. Undirected
// graphs count every edge as a two-vertex cycle, because the mirrored half
// is re-entered as a back edge.
func HasCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}

	color := make(map[string]uint8, g.VertexCount())
	for _, v := range g.Vertices() {
		if color[v] != white {
			continue
		}
		if cyclic := explore(g, v, color, nil); cyclic {
			return true
		}
	}

	return false
}

// explore runs one depth-first descent from start, coloring as it goes and
// appending finished vertices to post (when non-nil). It reports whether a
// back edge was met.
func explore(g *core.Graph, start string, color map[string]uint8, post *[]string) bool {
	startEdges, err := g.Neighbors(start)
	if err != nil {
		return false
	}
	color[start] = gray
	stack := []*frame{{id: start, edges: startEdges}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++

			switch color[e.To] {
			case gray:
				return true
			case black:
				continue
			}

			edges, err := g.Neighbors(e.To)
			if err != nil {
				continue
			}
			color[e.To] = gray
			stack = append(stack, &frame{id: e.To, edges: edges})

			continue
		}

		color[top.id] = black
		if post != nil {
			*post = append(*post, top.id)
		}
		stack = stack[:len(stack)-1]
	}

	return false
}

// Package scc decomposes a directed core.Graph into strongly connected
// components using Kosaraju's two-pass algorithm.
//
// Pass one computes a post-order finish sequence over the original graph,
// restarting from every unvisited vertex so disconnected regions are
// covered. Pass two runs DFS over the reverse graph in decreasing finish
// order; each DFS tree is one component.
//
// Components come back in condensation order: a component is emitted before
// every component it can reach. That ordering has no further semantic
// meaning and is not stable across calls with re-ordered input; callers must
// not rely on it beyond the condensation property.
//
// Both passes use explicit stacks, so deep chains cannot overflow the
// goroutine stack.
//
// Complexity: O(V + E) time, O(V + E) memory.
package scc

import (
	"errors"

	"github.com/Dineth14/graphkit/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("scc: graph is nil")

// Kosaraju returns the strongly connected components of g, each component a
// slice of vertex IDs. Two vertices share a component iff each reaches the
// other. On an undirected graph this degenerates to connected components.
func Kosaraju(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))
	finish := make([]string, 0, len(vertices))

	// Pass one: post-order finish times via an explicit frame stack.
	for _, root := range vertices {
		if visited[root] {
			continue
		}
		postOrder(g, root, visited, &finish)
	}

	// Pass two: reverse graph, decreasing finish order.
	rev := g.Reverse()
	assigned := make(map[string]bool, len(vertices))
	var components [][]string
	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if assigned[root] {
			continue
		}
		components = append(components, collect(rev, root, assigned))
	}

	return components, nil
}

// ComponentIDs maps every vertex to the index of its component in the slice
// returned by Kosaraju. The indices follow the same condensation ordering.
func ComponentIDs(components [][]string) map[string]int {
	ids := make(map[string]int)
	for i, comp := range components {
		for _, v := range comp {
			ids[v] = i
		}
	}

	return ids
}

// sccFrame is one suspended level of the iterative post-order walk.
type sccFrame struct {
	id    string
	edges []core.Edge
	next  int
}

// postOrder appends the finish sequence of the DFS tree rooted at root.
func postOrder(g *core.Graph, root string, visited map[string]bool, finish *[]string) {
	visited[root] = true
	stack := []sccFrame{newFrame(g, root)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if !visited[e.To] {
				visited[e.To] = true
				stack = append(stack, newFrame(g, e.To))
			}
			continue
		}
		*finish = append(*finish, top.id)
		stack = stack[:len(stack)-1]
	}
}

// collect gathers the component reachable from root in the reverse graph.
func collect(rev *core.Graph, root string, assigned map[string]bool) []string {
	assigned[root] = true
	component := []string{root}
	stack := []sccFrame{newFrame(rev, root)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if !assigned[e.To] {
				assigned[e.To] = true
				component = append(component, e.To)
				stack = append(stack, newFrame(rev, e.To))
			}
			continue
		}
		stack = stack[:len(stack)-1]
	}

	return component
}

func newFrame(g *core.Graph, id string) sccFrame {
	edges, err := g.Neighbors(id)
	if err != nil {
		edges = nil
	}

	return sccFrame{id: id, edges: edges}
}

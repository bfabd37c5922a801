package toposort_test

import (
	"fmt"
	"strings"

	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/toposort"
)

// ExampleKahn orders a tiny build dependency graph.
func ExampleKahn() {
	g := core.NewGraph(core.WithDirected())
	_ = g.AddEdge("parse", "compile", 0)
	_ = g.AddEdge("compile", "link", 0)
	_ = g.AddEdge("parse", "lint", 0)

	order, err := toposort.Kahn(g)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(strings.Join(order, " "))
	// Output:
	// parse compile lint link
}

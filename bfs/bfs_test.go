package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Dineth14/graphkit/bfs"
	"github.com/Dineth14/graphkit/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// negative MaxDepth is a violation
	g := core.NewGraph()
	g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_MissingStart verifies the documented soft edge case: a start vertex
// absent from the graph yields a singleton traversal, not an error.
func TestBFS_MissingStart(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)

	res, err := bfs.BFS(g, "Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"Z"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["Z"]; d != 0 {
		t.Errorf("Depth[Z] = %d; want 0", d)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_VisitsReachableOnce verifies every reachable vertex appears exactly
// once and disconnected vertices never appear.
func TestBFS_VisitsReachableOnce(t *testing.T) {
	g := core.NewGraph()
	// diamond A-B, A-C, B-D, C-D plus disconnected X-Y
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"X", "Y"}} {
		g.AddEdge(e[0], e[1], 0)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]int{}
	for _, id := range res.Order {
		seen[id]++
	}
	for _, id := range []string{"A", "B", "C", "D"} {
		if seen[id] != 1 {
			t.Errorf("vertex %s visited %d times; want 1", id, seen[id])
		}
	}
	if seen["X"] != 0 || seen["Y"] != 0 {
		t.Errorf("disconnected vertices visited: %v", res.Order)
	}
	if res.Depth["D"] != 2 {
		t.Errorf("Depth[D] = %d; want 2", res.Depth["D"])
	}
}

// TestBFS_PathTo verifies predecessor-chain reconstruction.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	res, err := bfs.BFS(g, "v0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := res.PathTo("v4")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []string{"v0", "v1", "v2", "v3", "v4"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if _, err = res.PathTo("nope"); err == nil {
		t.Error("PathTo(nope): want error, got nil")
	}
}

// TestBFS_MaxDepth verifies frontier truncation.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"v0", "v1", "v2"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancellation verifies context abort.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_HookAbort verifies OnVisit error propagation.
func TestBFS_HookAbort(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}

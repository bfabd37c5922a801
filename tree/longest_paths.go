package tree

// LongestPaths returns, for every node, the length in edges of the longest
// path starting at that node and going anywhere in the tree. Keys are node
// IDs; a nil root yields an empty map.
//
// Two passes: a bottom-up pass records each node's longest downward path
// (through its own subtree), then a top-down pass propagates the best path
// reachable via the parent, which is one edge up plus the better of the
// parent's own upward value and its tallest other-child descent. Each
// node's answer is the larger of the two.
//
// Complexity: O(N) time and space.
func LongestPaths(root *Node) map[string]int {
	result := make(map[string]int)
	if root == nil {
		return result
	}

	order := downOrder(root)

	// Bottom-up: longest downward path in edges.
	down := make(map[*Node]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		best := 0
		for _, c := range n.Children {
			if d := down[c] + 1; d > best {
				best = d
			}
		}
		down[n] = best
	}

	// Top-down: longest path that leaves through the parent. For each
	// child the parent offers either its own upward route or a descent
	// into a sibling subtree, whichever is longer.
	up := make(map[*Node]int, len(order))
	for _, n := range order {
		// Two best child descents, measured from n.
		first, second := 0, 0
		for _, c := range n.Children {
			d := down[c] + 1
			switch {
			case d > first:
				first, second = d, first
			case d > second:
				second = d
			}
		}

		for _, c := range n.Children {
			sibling := first
			if down[c]+1 == first {
				sibling = second
			}
			via := up[n]
			if sibling > via {
				via = sibling
			}
			up[c] = via + 1
		}
	}

	for _, n := range order {
		result[n.ID] = max(down[n], up[n])
	}

	return result
}

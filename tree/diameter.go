package tree

// Diameter returns the length, in edges, of the longest path between any
// two nodes of the tree. A single node or a nil root has diameter 0.
//
// One bottom-up pass accumulates each node's height (1 for a leaf, else
// 1 + tallest child); the longest path through a node is the sum of its
// two tallest child heights, and the answer is the maximum of that over
// all nodes.
//
// Complexity: O(N) time and space.
func Diameter(root *Node) int {
	if root == nil {
		return 0
	}

	order := downOrder(root)
	height := make(map[*Node]int, len(order))

	best := 0
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]

		// Two tallest child heights.
		first, second := 0, 0
		for _, c := range n.Children {
			h := height[c]
			switch {
			case h > first:
				first, second = h, first
			case h > second:
				second = h
			}
		}

		height[n] = 1 + first
		if first+second > best {
			best = first + second
		}
	}

	return best
}

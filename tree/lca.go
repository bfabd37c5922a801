package tree

// LCA returns the lowest common ancestor of the nodes with IDs a and b, or
// nil when either is absent from the tree. Both targets may be the same
// node, and a node is its own ancestor.
//
// Two explicit root-to-target paths are collected, then scanned in
// lockstep; the last position at which they agree is the answer.
//
// Complexity: O(N) time, O(depth) extra space per path.
func LCA(root *Node, a, b string) *Node {
	pathA := pathTo(root, a)
	pathB := pathTo(root, b)
	if pathA == nil || pathB == nil {
		return nil
	}

	var lca *Node
	for i := 0; i < len(pathA) && i < len(pathB); i++ {
		if pathA[i] != pathB[i] {
			break
		}
		lca = pathA[i]
	}

	return lca
}

// pathTo finds the root-to-target path by depth-first descent, keeping the
// current path on an explicit stack of nodes with sibling cursors.
func pathTo(root *Node, id string) []*Node {
	if root == nil {
		return nil
	}

	type level struct {
		node *Node
		next int
	}
	path := []*level{{node: root}}

	for len(path) > 0 {
		top := path[len(path)-1]
		if top.node.ID == id {
			out := make([]*Node, len(path))
			for i, l := range path {
				out[i] = l.node
			}

			return out
		}

		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			path = append(path, &level{node: child})

			continue
		}
		path = path[:len(path)-1]
	}

	return nil
}

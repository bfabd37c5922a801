package tree

// Node is one vertex of a rooted tree. Parent is a non-owning back pointer
// maintained by AddChild; the root's Parent is nil.
type Node struct {
	ID       string
	Children []*Node
	Parent   *Node
}

// NewNode returns a detached node with the given id.
func NewNode(id string) *Node {
	return &Node{ID: id}
}

// AddChild links child under n and returns child, so construction chains.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)

	return child
}

// downOrder returns every node under root with parents before children.
// Walking it backwards visits children first, which is what the
// height-accumulating passes need.
func downOrder(root *Node) []*Node {
	if root == nil {
		return nil
	}

	order := make([]*Node, 0, 16)
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, n.Children...)
	}

	return order
}

// Package tree computes path statistics over rooted trees: the diameter
// (longest path anywhere in the tree, in edges), the longest path starting
// from every node, and lowest common ancestors.
//
// Trees are built from Node values linked by Children and Parent pointers;
// node IDs are assumed unique within one tree. All passes run iteratively
// over explicit stacks, so degenerate chain-shaped trees tens of thousands
// of nodes deep are safe.
package tree

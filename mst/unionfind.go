package mst

// UnionFind tracks a partition of string ids into disjoint sets. The public
// surface is Find and Union; path compression and union by rank are internal
// accelerations, not part of the contract.
//
// A UnionFind is not safe for concurrent use: Find rewrites parent pointers
// even on reads.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind returns a partition where every given id is its own set.
// Ids never seen before may still be passed to Find or Union later; they
// join as fresh singleton sets on first contact.
func NewUnionFind(ids []string) *UnionFind {
	u := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		u.parent[id] = id
	}

	return u
}

// Find returns the canonical representative of x's set, halving the path
// behind it as it walks.
func (u *UnionFind) Find(x string) string {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		return x
	}

	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}

	return root
}

// Union merges the sets holding x and y. It reports false when they were
// already one set, which is how Kruskal detects a would-be cycle.
func (u *UnionFind) Union(x, y string) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}

	// Attach the shallower root under the deeper one.
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}

	return true
}

// Package core defines the shared Graph and Edge types used by every
// algorithm package in graphkit.
//
// What
//
//   - Graph: an adjacency-list graph over string vertex IDs, configurable at
//     construction time as directed or undirected, weighted or unweighted,
//     with or without self-loops.
//   - Edge: a (From, To, Weight) triple. Undirected graphs insert both
//     directions atomically inside a single AddEdge call; no later code ever
//     infers symmetry on its own.
//   - Vertices referenced only as an edge target are created automatically,
//     so algorithms never meet a "dangling" target that is missing from the
//     vertex set.
//
// Determinism
//
//	Vertices() returns IDs sorted lexicographically ascending.
//	Edges() returns edges in insertion order, which is what gives Kruskal its
//	stable tie-breaking.
//	Neighbors(u) returns outgoing edges in insertion order.
//
// Concurrency
//
//	A single sync.RWMutex guards all graph state, so a Graph may be built
//	from several goroutines. Algorithm packages treat the graph as read-only
//	input and keep all per-call state (visited sets, distance maps, queues)
//	local, so running many algorithms over one graph concurrently is safe.
//
// Complexity: AddVertex/AddEdge/HasVertex O(1) amortized; Vertices O(V log V);
// Edges/Clone/Reverse O(V + E).
package core

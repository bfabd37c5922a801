// Package graphkit is a graph algorithms toolkit: a thread-safe in-memory
// graph model plus a flat set of pure algorithm functions over it.
//
// Everything is organized by concern:
//
//	core/     — the Graph type: string vertex IDs, int64 weights, mode flags
//	bfs/      — breadth-first traversal with depth and parent tracking
//	dfs/      — iterative depth-first traversal with visit hooks
//	spath/    — Dijkstra, Bellman-Ford, SPFA, Floyd-Warshall
//	scc/      — Kosaraju strongly connected components
//	twosat/   — 2-SAT over the SCC condensation, with witness assignments
//	toposort/ — Kahn and DFS topological orderings, cycle queries
//	mst/      — Kruskal and Prim spanning trees, union-find
//	search/   — Hamiltonian path, Eulerian path, knight's tour
//	tree/     — diameter, per-node longest paths, lowest common ancestor
//	gen/      — deterministic graph fixtures for tests and benchmarks
//
// Algorithms never mutate the input graph and own all per-call state, so
// running many calls concurrently over one graph is safe. Contract
// violations (absent source vertex, negative weight where forbidden,
// negative cycles) surface as sentinel errors; "no such path exists" is a
// computed answer and comes back as a nil result instead.
//
// A small CLI over TOML graph manifests lives in cmd/graphkit.
package graphkit

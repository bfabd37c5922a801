// Package spath implements the single-source and all-pairs shortest-path
// family over a core.Graph: Dijkstra, Bellman-Ford, SPFA, and
// Floyd-Warshall.
//
// All four algorithms share the relax-and-record pattern but differ in
// scheduling and negative-weight tolerance:
//
//   - Dijkstra: non-negative weights only, min-heap scheduling,
//     O((V+E) log V). Negative weights are rejected eagerly, before any
//     relaxation, with ErrNegativeWeight.
//   - BellmanFord: tolerates negative weights; up to |V|-1 relaxation rounds
//     over all arcs with a fixed-point early exit, O(V·E). A post-relaxation
//     scan proves any reachable negative cycle and fails with
//     ErrNegativeCycle naming the offending edge.
//   - SPFA: work-queue Bellman-Ford variant; only vertices whose distance
//     just improved are re-enqueued. Any single vertex relaxed more than
//     |V|-1 times fails immediately with ErrNegativeCycle. That is the same
//     bound Bellman-Ford uses, so both report identically on the same input.
//   - FloydWarshall: all-pairs via triple-nested relaxation, O(V³). A
//     negative self-distance after completion rejects the whole result with
//     ErrNegativeCycle.
//
// Distances are int64. Unreached vertices carry the Unreachable sentinel.
// On an unweighted graph every edge counts as unit weight, so the family
// degrades gracefully to hop counting.
//
// A negative cycle is never absorbed silently: any distances computed in its
// presence would be unbounded below, so the whole call fails.
package spath

// Package toposort orders the vertices of a directed acyclic graph so that
// every edge points forward in the ordering.
//
// Two independent engines are provided: Kahn (in-degree queue) and DFS
// (three-color depth-first pass with post-order reversal). Both return
// ErrCycleDetected when no ordering exists. HasCycle answers the boolean
// question alone, and All enumerates every valid ordering by backtracking.
//
// All engines walk the graph read-only and keep their working state on the
// call stack or in local maps, so concurrent calls over one graph are safe.
package toposort

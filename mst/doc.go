// Package mst builds minimum spanning trees over undirected graphs.
//
// Kruskal sorts all edges ascending by weight and accepts those joining
// distinct components, tracked by a UnionFind. Prim grows one tree outward
// from a chosen root through a min-heap frontier. On connected inputs both
// produce trees of equal total weight; on disconnected inputs Kruskal spans
// every component (a minimum spanning forest) while Prim covers only the
// root's component, and neither treats disconnection as an error.
//
// Unweighted graphs are handled by giving every edge unit weight, which
// makes any spanning tree minimal.
package mst

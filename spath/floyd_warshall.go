// Package spath: all-pairs shortest paths via Floyd-Warshall on an
// index-compressed flat matrix.
package spath

import (
	"github.com/Dineth14/graphkit/core"
)

// FloydWarshall computes all-pairs shortest distances.
//
// Vertices are compressed to dense indices and distances accumulate in a
// flat row-major int64 buffer with a fixed k→i→j loop order, so the result
// is deterministic. Self-distance is seeded at 0 and direct edges at their
// weight (the minimum, under parallel edges).
//
// After completion, any vertex whose self-distance dropped below zero lies
// on a negative cycle and the whole result is rejected with
// ErrNegativeCycle.
//
// The returned mapping is dist[u][v]; unreachable pairs carry Unreachable.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g *core.Graph) (map[string]map[string]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[string]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	// Seed: Unreachable everywhere, 0 on the diagonal, direct edges after.
	data := make([]int64, n*n)
	for i := range data {
		data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}
	for _, a := range arcs(g) {
		i, j := index[a.from], index[a.to]
		if a.weight < data[i*n+j] {
			data[i*n+j] = a.weight
		}
	}

	// Fixed k→i→j order; rows with no path to k are skipped so the
	// Unreachable sentinel never enters the arithmetic.
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj == Unreachable {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	// A negative self-distance means some cycle through that vertex sums
	// below zero; the whole table is meaningless then.
	for i := 0; i < n; i++ {
		if data[i*n+i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	out := make(map[string]map[string]int64, n)
	for i, u := range vertices {
		row := make(map[string]int64, n)
		for j, v := range vertices {
			row[v] = data[i*n+j]
		}
		out[u] = row
	}

	return out, nil
}

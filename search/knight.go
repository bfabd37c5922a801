package search

import "sort"

// knightMoves lists the eight L-shaped offsets.
var knightMoves = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// KnightsTour finds a sequence of knight moves from the start square that
// lands on every square of an n×n board exactly once. Squares are (row,
// col) pairs, zero-based. Returns (nil, nil) when no tour exists.
//
// The search backtracks, but candidate moves are tried in Warnsdorff
// order: squares with the fewest onward moves first. That bias steers the
// walk along the board's rim before the center opens up, which makes
// backtracking rare on boards where a tour exists.
func KnightsTour(n, startRow, startCol int) ([][2]int, error) {
	if n < 1 {
		return nil, ErrBadBoard
	}
	if startRow < 0 || startRow >= n || startCol < 0 || startCol >= n {
		return nil, ErrOffBoard
	}

	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}

	onward := func(r, c int) int {
		count := 0
		for _, m := range knightMoves {
			nr, nc := r+m[0], c+m[1]
			if nr >= 0 && nr < n && nc >= 0 && nc < n && !visited[nr][nc] {
				count++
			}
		}

		return count
	}

	tour := make([][2]int, 0, n*n)

	var extend func(r, c int) bool
	extend = func(r, c int) bool {
		visited[r][c] = true
		tour = append(tour, [2]int{r, c})

		if len(tour) == n*n {
			return true
		}

		var candidates [][2]int
		for _, m := range knightMoves {
			nr, nc := r+m[0], c+m[1]
			if nr >= 0 && nr < n && nc >= 0 && nc < n && !visited[nr][nc] {
				candidates = append(candidates, [2]int{nr, nc})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return onward(candidates[i][0], candidates[i][1]) <
				onward(candidates[j][0], candidates[j][1])
		})

		for _, next := range candidates {
			if extend(next[0], next[1]) {
				return true
			}
		}

		visited[r][c] = false
		tour = tour[:len(tour)-1]

		return false
	}

	if !extend(startRow, startCol) {
		return nil, nil
	}

	return tour, nil
}

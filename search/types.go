package search

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrDirected is returned by EulerianPath, whose degree-parity
	// existence rule is an undirected notion.
	ErrDirected = errors.New("search: graph must be undirected")

	// ErrBadBoard is returned by KnightsTour for a non-positive board size.
	ErrBadBoard = errors.New("search: board size must be positive")

	// ErrOffBoard is returned by KnightsTour when the start square lies
	// outside the board.
	ErrOffBoard = errors.New("search: start square off the board")
)

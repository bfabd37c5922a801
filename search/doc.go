// Package search holds the combinatorial path searches: Hamiltonian path
// (visit every vertex once), Eulerian path (use every edge once), and the
// knight's tour over an n×n board.
//
// Hamiltonian path and the knight's tour are exponential backtracking
// searches, intended for small inputs; the tour biases its branching with
// Warnsdorff's rule to keep backtracking rare in practice. "No such path
// exists" is a computed answer, not a failure: all three return a nil path
// and a nil error in that case.
package search

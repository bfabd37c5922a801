// Package twosat decides satisfiability of 2-CNF formulas via the
// implication graph and its strongly connected components.
//
// A literal is a signed integer: v means variable v is true, -v means
// variable v is false. A Clause is an unordered pair of literals. Each
// clause (a ∨ b) contributes the implications ¬a → b and ¬b → a; the
// implication graph is derived per call and never stored.
//
// The formula is unsatisfiable iff some variable x shares a strongly
// connected component with ¬x: literals in one component are mutually
// implied, so x and ¬x implying each other is a contradiction.
//
// Complexity: O(vars + clauses) time and memory.
package twosat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Dineth14/graphkit/core"
	"github.com/Dineth14/graphkit/scc"
)

// Sentinel errors for formula validation.
var (
	// ErrBadLiteral is returned for a zero literal or one whose variable
	// exceeds the declared variable count.
	ErrBadLiteral = errors.New("twosat: literal out of range")

	// ErrBadVarCount is returned for a negative variable count.
	ErrBadVarCount = errors.New("twosat: negative variable count")
)

// Clause is a disjunction of two literals (a ∨ b).
type Clause struct {
	A, B int
}

// Solve reports whether the conjunction of clauses over variables 1..numVars
// is satisfiable.
func Solve(clauses []Clause, numVars int) (bool, error) {
	assignment, err := Assignment(clauses, numVars)
	if err != nil {
		return false, err
	}

	return assignment != nil, nil
}

// Assignment returns a witness assignment for the formula, indexed so that
// assignment[v-1] is the value of variable v. An unsatisfiable formula
// yields (nil, nil): absence of a model is a computed answer, not an error.
//
// The witness follows the component ordering of the condensation: a variable
// is true iff its positive literal's component comes after its negation's.
func Assignment(clauses []Clause, numVars int) ([]bool, error) {
	if numVars < 0 {
		return nil, ErrBadVarCount
	}
	for _, c := range clauses {
		if err := checkLiteral(c.A, numVars); err != nil {
			return nil, err
		}
		if err := checkLiteral(c.B, numVars); err != nil {
			return nil, err
		}
	}

	components, err := scc.Kosaraju(implicationGraph(clauses, numVars))
	if err != nil {
		return nil, err
	}
	ids := scc.ComponentIDs(components)

	assignment := make([]bool, numVars)
	for v := 1; v <= numVars; v++ {
		pos := ids[litID(v)]
		neg := ids[litID(-v)]
		if pos == neg {
			return nil, nil // x and ¬x mutually implied
		}
		assignment[v-1] = pos > neg
	}

	return assignment, nil
}

// implicationGraph builds the directed graph with edges ¬a→b and ¬b→a per
// clause. Every literal of every declared variable is present as a vertex,
// so free variables still receive component ids.
func implicationGraph(clauses []Clause, numVars int) *core.Graph {
	g := core.NewGraph(core.WithDirected())
	for v := 1; v <= numVars; v++ {
		_ = g.AddVertex(litID(v))
		_ = g.AddVertex(litID(-v))
	}
	for _, c := range clauses {
		_ = g.AddEdge(litID(-c.A), litID(c.B), 0)
		_ = g.AddEdge(litID(-c.B), litID(c.A), 0)
	}

	return g
}

// litID renders a literal as a graph vertex ID.
func litID(lit int) string {
	return strconv.Itoa(lit)
}

func checkLiteral(lit, numVars int) error {
	if lit == 0 || lit > numVars || lit < -numVars {
		return fmt.Errorf("%w: %d (vars: %d)", ErrBadLiteral, lit, numVars)
	}

	return nil
}

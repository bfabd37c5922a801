package twosat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dineth14/graphkit/twosat"
)

// evaluate checks a witness assignment against every clause.
func evaluate(clauses []twosat.Clause, assignment []bool) bool {
	lit := func(l int) bool {
		if l > 0 {
			return assignment[l-1]
		}
		return !assignment[-l-1]
	}
	for _, c := range clauses {
		if !lit(c.A) && !lit(c.B) {
			return false
		}
	}
	return true
}

// TestSolve_ForcedContradiction covers the canonical unsatisfiable formula:
// (x1∨x2)∧(x1∨¬x2)∧(¬x1∨x2)∧(¬x1∨¬x2).
func TestSolve_ForcedContradiction(t *testing.T) {
	clauses := []twosat.Clause{
		{A: 1, B: 2},
		{A: 1, B: -2},
		{A: -1, B: 2},
		{A: -1, B: -2},
	}
	ok, err := twosat.Solve(clauses, 2)
	require.NoError(t, err)
	require.False(t, ok)

	assignment, err := twosat.Assignment(clauses, 2)
	require.NoError(t, err)
	require.Nil(t, assignment)
}

// TestSolve_Satisfiable covers (x1∨x2)∧(¬x1∨x3)∧(¬x2∨¬x3)∧(x2∨¬x3) and
// verifies the witness actually satisfies every clause.
func TestSolve_Satisfiable(t *testing.T) {
	clauses := []twosat.Clause{
		{A: 1, B: 2},
		{A: -1, B: 3},
		{A: -2, B: -3},
		{A: 2, B: -3},
	}
	ok, err := twosat.Solve(clauses, 3)
	require.NoError(t, err)
	require.True(t, ok)

	assignment, err := twosat.Assignment(clauses, 3)
	require.NoError(t, err)
	require.Len(t, assignment, 3)
	require.True(t, evaluate(clauses, assignment))
}

// TestSolve_AtLeastAtMostOne: (x1∨x2)∧(¬x1∨¬x2) forces exactly one of two.
func TestSolve_AtLeastAtMostOne(t *testing.T) {
	clauses := []twosat.Clause{
		{A: 1, B: 2},
		{A: -1, B: -2},
	}
	assignment, err := twosat.Assignment(clauses, 2)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	require.NotEqual(t, assignment[0], assignment[1])
}

// TestSolve_FreeVariable: variables never mentioned still get a value.
func TestSolve_FreeVariable(t *testing.T) {
	clauses := []twosat.Clause{{A: 1, B: 1}} // forces x1
	assignment, err := twosat.Assignment(clauses, 3)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	require.True(t, assignment[0])
	require.True(t, evaluate(clauses, assignment))
}

// TestSolve_EmptyFormula is trivially satisfiable.
func TestSolve_EmptyFormula(t *testing.T) {
	ok, err := twosat.Solve(nil, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestSolve_Validation covers the literal range sentinels.
func TestSolve_Validation(t *testing.T) {
	_, err := twosat.Solve([]twosat.Clause{{A: 0, B: 1}}, 1)
	require.ErrorIs(t, err, twosat.ErrBadLiteral)

	_, err = twosat.Solve([]twosat.Clause{{A: 1, B: 5}}, 2)
	require.ErrorIs(t, err, twosat.ErrBadLiteral)

	_, err = twosat.Solve(nil, -1)
	require.ErrorIs(t, err, twosat.ErrBadVarCount)
}

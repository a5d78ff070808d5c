package solverbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeBackendSatisfiesBoundedEquality(t *testing.T) {
	f := NewFakeBackend()
	v := f.NewIntVar(0, 10, "v")
	f.AddLinearEQ([]Term{{Var: v, Coeff: 1}}, 7)

	result, err := f.Solve(1)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, result.Status)
	assert.Equal(t, int64(7), result.Value(v))
}

func TestFakeBackendMinimizesObjective(t *testing.T) {
	f := NewFakeBackend()
	a := f.NewBoolVar("a")
	b := f.NewBoolVar("b")
	f.AddLinearGE(Sum(a, b), 1) // at least one must be true
	f.SetObjectiveMinimize(Sum(a, b))

	result, err := f.Solve(1)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, result.Status)
	assert.Equal(t, float64(1), result.ObjectiveValue)
	assert.True(t, result.Bool(a) || result.Bool(b))
	assert.False(t, result.Bool(a) && result.Bool(b))
}

func TestFakeBackendReportsInfeasible(t *testing.T) {
	f := NewFakeBackend()
	a := f.NewBoolVar("a")
	f.AddLinearGE([]Term{{Var: a, Coeff: 1}}, 1)
	f.AddLinearLE([]Term{{Var: a, Coeff: 1}}, 0)

	result, err := f.Solve(1)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, result.Status)
}

func TestFakeBackendUnreadVarDefaultsToZero(t *testing.T) {
	f := NewFakeBackend()
	v := f.NewIntVar(0, 5, "unused")
	result, err := f.Solve(1)
	require.NoError(t, err)
	// v participates in no constraint/objective, so it simply never
	// moves off the solver's starting point, the variable's lower bound.
	assert.Equal(t, int64(0), result.Value(v))
}

func TestSumBuildsUnitCoefficients(t *testing.T) {
	terms := Sum(Var(0), Var(2))
	require.Len(t, terms, 2)
	assert.Equal(t, int64(1), terms[0].Coeff)
	assert.Equal(t, Var(2), terms[1].Var)
}

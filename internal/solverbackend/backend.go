// Package solverbackend defines the CP-SAT capability the model builder
// depends on (spec.md §9: newBool, newIntVar, addLinearLEQ/EQ/GEQ,
// minimize, solve, value, log) and a concrete adapter over the real
// github.com/google/or-tools CP-SAT Go bindings. Any backend satisfying
// Backend is acceptable, including the local-search FakeBackend used in unit
// tests of internal/model.
package solverbackend


// Var is an opaque handle to a decision variable (boolean or bounded
// integer) created by a Backend. Callers never inspect it; they only
// pass it back into Term, AddLinear*, or read it out of a SolveResult.
type Var int

// Term is one (variable, coefficient) pair in a linear expression.
type Term struct {
	Var   Var
	Coeff int64
}

// Sum builds a Term slice with coefficient 1 for every variable, a
// convenience for the common case (e.g. an at-most-one constraint).
func Sum(vars ...Var) []Term {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Var: v, Coeff: 1}
	}
	return terms
}

// Status is the solve outcome (§4.6 state machine).
type Status string

const (
	StatusOptimal    Status = "Optimal"
	StatusFeasible   Status = "Feasible"
	StatusInfeasible Status = "Infeasible"
	StatusTimeout    Status = "Timeout"
	StatusError      Status = "Error"
)

// SolveResult is what a Backend hands back after Solve returns.
type SolveResult struct {
	Status         Status
	ObjectiveValue float64
	Log            string

	values map[Var]int64
}

// Value returns the solved value of v (0/1 for a bool var, the integer
// value for an int var). Reading a var that was never touched by the
// solve returns 0.
func (r SolveResult) Value(v Var) int64 {
	return r.values[v]
}

// Bool is a convenience wrapper over Value for boolean decision
// variables such as x[p,d,s].
func (r SolveResult) Bool(v Var) bool {
	return r.Value(v) != 0
}

// Backend is the abstract CP-SAT capability the model builder programs
// against (spec.md §9). Variables and constraints must be added in a
// deterministic order by the caller; the backend itself does not
// reorder anything.
type Backend interface {
	NewBoolVar(name string) Var
	NewIntVar(lo, hi int64, name string) Var

	AddLinearLE(terms []Term, rhs int64)
	AddLinearGE(terms []Term, rhs int64)
	AddLinearEQ(terms []Term, rhs int64)

	// SetObjectiveMinimize replaces any previously set objective.
	SetObjectiveMinimize(terms []Term)

	// Solve runs the search under the given wall-clock ceiling (seconds)
	// with a fixed random seed for determinism (§5 Ordering). Cancellation
	// from within the core is not supported (§5): Solve always runs to
	// completion, proof, or the time limit, whichever comes first.
	Solve(timeLimitSec float64) (SolveResult, error)
}

// newValues is a small constructor helper shared by backend
// implementations when assembling a SolveResult.
func newValues() map[Var]int64 {
	return make(map[Var]int64)
}

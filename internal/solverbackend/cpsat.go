package solverbackend

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

// randomSeed fixes CP-SAT's internal tie-breaking so that two runs over
// the same expanded input produce identical assignments (§5 Ordering,
// §8 property 8).
const randomSeed = 20260101

// CPSATBackend adapts the real github.com/google/or-tools CP-SAT Go
// bindings (ortools/sat/go/cpmodel) to the Backend capability. The
// variable/constraint-building shape below is grounded directly on the
// upstream nurses_sat sample: NewBoolVar/NewIntVar, NewLinearExpr +
// AddTerm, AddLessOrEqual/AddGreaterOrEqual/AddEquality, Minimize,
// model.Model(), and cpmodel.SolveCpModelWithParameters.
type CPSATBackend struct {
	builder *cpmodel.CpModelBuilder

	kinds []varKind
	bools []cpmodel.BoolVar
	ints  []cpmodel.IntVar
}

type varKind struct {
	isBool bool
	index  int // index into bools or ints
}

// NewCPSATBackend constructs an empty model builder.
func NewCPSATBackend() *CPSATBackend {
	return &CPSATBackend{builder: cpmodel.NewCpModelBuilder()}
}

func (b *CPSATBackend) NewBoolVar(name string) Var {
	bv := b.builder.NewBoolVar().WithName(name)
	idx := len(b.bools)
	b.bools = append(b.bools, bv)
	b.kinds = append(b.kinds, varKind{isBool: true, index: idx})
	return Var(len(b.kinds) - 1)
}

func (b *CPSATBackend) NewIntVar(lo, hi int64, name string) Var {
	iv := b.builder.NewIntVar(lo, hi).WithName(name)
	idx := len(b.ints)
	b.ints = append(b.ints, iv)
	b.kinds = append(b.kinds, varKind{isBool: false, index: idx})
	return Var(len(b.kinds) - 1)
}

func (b *CPSATBackend) arg(v Var) cpmodel.LinearArgument {
	k := b.kinds[v]
	if k.isBool {
		return b.bools[k.index]
	}
	return b.ints[k.index]
}

func (b *CPSATBackend) expr(terms []Term) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, t := range terms {
		if t.Coeff == 1 {
			expr.Add(b.arg(t.Var))
		} else {
			expr.AddTerm(b.arg(t.Var), t.Coeff)
		}
	}
	return expr
}

func (b *CPSATBackend) AddLinearLE(terms []Term, rhs int64) {
	b.builder.AddLessOrEqual(b.expr(terms), cpmodel.NewConstant(rhs))
}

func (b *CPSATBackend) AddLinearGE(terms []Term, rhs int64) {
	b.builder.AddGreaterOrEqual(b.expr(terms), cpmodel.NewConstant(rhs))
}

func (b *CPSATBackend) AddLinearEQ(terms []Term, rhs int64) {
	b.builder.AddEquality(b.expr(terms), cpmodel.NewConstant(rhs))
}

func (b *CPSATBackend) SetObjectiveMinimize(terms []Term) {
	b.builder.Minimize(b.expr(terms))
}

// Solve instantiates the proto model, sets the wall-clock ceiling and a
// fixed seed, and runs the search. CP-SAT's native search log is
// written to the process's stdout when LogSearchProgress is set; it is
// captured here via a redirected pipe so it can be folded into
// diagnostics.logOutput (§4.7) instead of leaking onto the CLI's own
// stdout (§6 reserves stdout for exactly this capture).
func (b *CPSATBackend) Solve(timeLimitSec float64) (SolveResult, error) {
	model, err := b.builder.Model()
	if err != nil {
		return SolveResult{Status: StatusError}, fmt.Errorf("instantiate CP model: %w", err)
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds:  &timeLimitSec,
		RandomSeed:        protoInt32(randomSeed),
		LogSearchProgress: protoBool(true),
	}

	logOutput, response, solveErr := captureStdout(func() (*cpmodel.CpSolverResponse, error) {
		return cpmodel.SolveCpModelWithParameters(model, params)
	})
	if solveErr != nil {
		return SolveResult{Status: StatusError, Log: logOutput}, fmt.Errorf("solve CP model: %w", solveErr)
	}

	result := SolveResult{
		ObjectiveValue: response.GetObjectiveValue(),
		Log:            logOutput,
		values:         newValues(),
	}
	result.Status = translateStatus(response.GetStatus())

	for i, bv := range b.bools {
		result.values[varFromBoolIndex(b, i)] = boolToInt(cpmodel.SolutionBooleanValue(response, bv))
	}
	for i := range b.ints {
		result.values[varFromIntIndex(b, i)] = cpmodel.SolutionIntegerValue(response, b.ints[i])
	}
	return result, nil
}

func varFromBoolIndex(b *CPSATBackend, idx int) Var {
	for v, k := range b.kinds {
		if k.isBool && k.index == idx {
			return Var(v)
		}
	}
	return -1
}

func varFromIntIndex(b *CPSATBackend, idx int) Var {
	for v, k := range b.kinds {
		if !k.isBool && k.index == idx {
			return Var(v)
		}
	}
	return -1
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

// translateStatus maps CP-SAT's native status onto the driver's state
// machine (§4.6). UNKNOWN means the time limit elapsed before the
// search could prove anything either way, which this driver reports as
// Timeout rather than Error.
func translateStatus(status cpmodel.CpSolverStatus) Status {
	switch status.String() {
	case "OPTIMAL":
		return StatusOptimal
	case "FEASIBLE":
		return StatusFeasible
	case "INFEASIBLE":
		return StatusInfeasible
	case "UNKNOWN":
		return StatusTimeout
	default:
		return StatusError
	}
}

func protoBool(v bool) *bool    { return &v }
func protoInt32(v int32) *int32 { return &v }

// captureStdout redirects the process's stdout for the duration of fn,
// returning whatever was written to it alongside fn's own result. CP-SAT
// writes its search log to stdout; nothing else in the pipeline writes
// there during a solve.
func captureStdout(fn func() (*cpmodel.CpSolverResponse, error)) (string, *cpmodel.CpSolverResponse, error) {
	r, w, err := os.Pipe()
	if err != nil {
		resp, ferr := fn()
		return "", resp, ferr
	}
	original := os.Stdout
	os.Stdout = w

	// The reader must drain concurrently with fn, not after it: CP-SAT's
	// search log can exceed the OS pipe buffer (~64KB on Linux), and
	// without a concurrent reader fn would block on the write end
	// forever, so "done" would never receive and the solve would hang.
	var buf bytes.Buffer
	copyDone := make(chan struct{})
	go func() {
		io.Copy(&buf, r)
		close(copyDone)
	}()

	type out struct {
		resp *cpmodel.CpSolverResponse
		err  error
	}
	done := make(chan out, 1)
	go func() {
		resp, ferr := fn()
		done <- out{resp: resp, err: ferr}
	}()
	result := <-done

	os.Stdout = original
	w.Close()
	<-copyDone
	r.Close()

	return buf.String(), result.resp, result.err
}

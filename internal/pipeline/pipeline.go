// Package pipeline wires the strictly linear control flow of spec.md
// §2: validate → expand → analyse → build → solve → render. Failure at
// an earlier stage short-circuits into a recovered error document
// (§7); only a solver crash or I/O failure surfaces as a Go error,
// which the CLI treats as InternalError (non-zero exit, no output
// file).
package pipeline

import (
	"fmt"

	"github.com/carehome/roster-solver/internal/availability"
	"github.com/carehome/roster-solver/internal/calendar"
	"github.com/carehome/roster-solver/internal/model"
	"github.com/carehome/roster-solver/internal/render"
	"github.com/carehome/roster-solver/internal/rosterlog"
	"github.com/carehome/roster-solver/internal/schema"
	"github.com/carehome/roster-solver/internal/solverbackend"
)

// Options configures one pipeline run.
type Options struct {
	TimeLimitSeconds float64
	// Backend overrides the default CP-SAT backend; tests pass a
	// solverbackend.FakeBackend here.
	Backend solverbackend.Backend
	Logger  *rosterlog.Logger
}

// Run executes the full pipeline over raw input JSON and returns the
// output document described in §6. It only returns a non-nil error for
// InternalError-class failures (§7); everything else, including every
// validation/expansion/solver failure, comes back as an
// Infeasible-flagged Document with a nil error.
func Run(data []byte, opts Options) (render.Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = rosterlog.New(discard{}, "pipeline", false)
	}

	in, errs := schema.ParseAndValidate(data)
	if errs != nil {
		logger.Error("input validation failed", "count", len(errs))
		return render.FromValidationErrors(errs, logger.Captured()), nil
	}
	logger.Info("input validated", "people", len(in.People), "days", in.Days)

	demand := calendar.Expand(in)
	for _, w := range demand.Warnings {
		logger.Warn(w)
	}
	logger.Info("demand expanded", "totalNeed", demand.TotalNeed)

	report := availability.Analyse(in, demand)
	if report.Flag {
		logger.Warn("availability below demand in at least one slot", "count", len(report.Warnings))
	}

	backend := opts.Backend
	if backend == nil {
		backend = solverbackend.NewCPSATBackend()
	}
	m := model.Build(backend, in, demand)
	for _, w := range m.Warnings {
		logger.Warn(w)
	}
	logger.Info("model built", "x", m.VarCounts.X, "shortage", m.VarCounts.Shortage, "over", m.VarCounts.Over, "violateOff", m.VarCounts.ViolateOff)

	timeLimit := opts.TimeLimitSeconds
	if timeLimit <= 0 {
		timeLimit = schema.DefaultTimeLimitSeconds
	}

	result, err := backend.Solve(timeLimit)
	if err != nil {
		return render.Document{}, fmt.Errorf("internal error: solver failed: %w", err)
	}
	logger.Info("solve finished", "status", string(result.Status), "objective", result.ObjectiveValue)

	logOutput := joinLogs(logger.Captured(), result.Log)

	switch result.Status {
	case solverbackend.StatusInfeasible:
		return render.FromSolverFailure("SolverInfeasible", "the model is infeasible under the given hard constraints", logOutput, in.Warnings), nil
	case solverbackend.StatusTimeout:
		return render.FromSolverFailure("SolverTimeout", "the solver exceeded the time limit before proving a solution", logOutput, in.Warnings), nil
	case solverbackend.StatusError:
		return render.Document{}, fmt.Errorf("internal error: solver returned status Error")
	default:
		doc := render.FromSolution(in, m, result, report, logOutput)
		return doc, nil
	}
}

func joinLogs(pipelineLog, solverLog string) string {
	if pipelineLog == "" {
		return solverLog
	}
	if solverLog == "" {
		return pipelineLog
	}
	return pipelineLog + "\n" + solverLog
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

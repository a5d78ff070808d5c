package render

import (
	"fmt"
	"strings"

	"github.com/carehome/roster-solver/internal/schema"
)

// FromValidationErrors builds the recovered-failure document for a
// validation/expansion-stage error (§7): infeasible:true, a reason, and
// no assignments/matrix/summary.
func FromValidationErrors(errs schema.ValidationErrors, logOutput string) Document {
	var messages []string
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	kind := string(schema.KindInvalidSchema)
	if len(errs) > 0 {
		kind = string(errs[0].Kind)
	}
	return Document{
		Infeasible: true,
		Reason:     "input validation failed",
		Error: &ErrorInfo{
			Code:    kind,
			Message: fmt.Sprintf("%d validation error(s)", len(errs)),
			Details: strings.Join(messages, "; "),
		},
		Diagnostics: Diagnostics{
			Warnings:  messages,
			LogOutput: logOutput,
		},
	}
}

// FromSolverFailure builds the recovered-failure document for a solver
// outcome of Infeasible or Timeout-with-no-incumbent (§4.6/§7).
func FromSolverFailure(kind, reason, logOutput string, warnings []string) Document {
	return Document{
		Infeasible: true,
		Reason:     reason,
		Error: &ErrorInfo{
			Code:    kind,
			Message: reason,
		},
		Diagnostics: Diagnostics{
			Warnings:  warnings,
			LogOutput: logOutput,
		},
	}
}

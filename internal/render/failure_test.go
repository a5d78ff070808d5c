package render

import (
	"testing"

	"github.com/carehome/roster-solver/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidationErrorsUsesFirstErrorKind(t *testing.T) {
	errs := schema.ValidationErrors{
		{Kind: schema.KindDuplicateID, Field: "people[1].id", Message: "duplicate person id \"a\""},
		{Kind: schema.KindInvalidField, Field: "month", Message: "must be in [1,12]"},
	}
	doc := FromValidationErrors(errs, "log line")

	require.True(t, doc.Infeasible)
	require.NotNil(t, doc.Error)
	assert.Equal(t, string(schema.KindDuplicateID), doc.Error.Code)
	assert.Contains(t, doc.Error.Details, "duplicate person id")
	assert.Contains(t, doc.Error.Details, "must be in [1,12]")
	assert.Equal(t, "log line", doc.Diagnostics.LogOutput)
}

func TestFromSolverFailureSetsReasonAndCode(t *testing.T) {
	doc := FromSolverFailure("SolverTimeout", "exceeded time limit", "log", []string{"w1"})
	assert.True(t, doc.Infeasible)
	assert.Equal(t, "exceeded time limit", doc.Reason)
	assert.Equal(t, "SolverTimeout", doc.Error.Code)
	assert.Equal(t, []string{"w1"}, doc.Diagnostics.Warnings)
}

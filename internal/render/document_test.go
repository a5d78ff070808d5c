package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalJSONSuccessOmitsErrorAndIncludesEmptySections exercises §8
// scenario S1: a zero-day success still reports present-but-empty
// assignments/matrix, not omitted or null fields.
func TestMarshalJSONSuccessOmitsErrorAndIncludesEmptySections(t *testing.T) {
	doc := Document{PeopleOrder: []string{"a"}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assignments, ok := out["assignments"].([]interface{})
	require.True(t, ok, "assignments must be present and be an array")
	assert.Empty(t, assignments)

	matrix, ok := out["matrix"].([]interface{})
	require.True(t, ok, "matrix must be present and be an array")
	assert.Empty(t, matrix)

	_, hasInfeasible := out["infeasible"]
	assert.False(t, hasInfeasible, "infeasible must be omitted, not false, on success")
	_, hasError := out["error"]
	assert.False(t, hasError)
}

// TestMarshalJSONFailureOmitsSolutionSections covers §7: a recovered
// failure document must not emit assignments/matrix/summary at all.
func TestMarshalJSONFailureOmitsSolutionSections(t *testing.T) {
	doc := Document{
		Infeasible: true,
		Reason:     "the model is infeasible",
		Error:      &ErrorInfo{Code: "SolverInfeasible", Message: "infeasible"},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	_, hasAssignments := out["assignments"]
	assert.False(t, hasAssignments)
	_, hasMatrix := out["matrix"]
	assert.False(t, hasMatrix)
	_, hasSummary := out["summary"]
	assert.False(t, hasSummary)

	assert.Equal(t, true, out["infeasible"])
	assert.Equal(t, "the model is infeasible", out["reason"])

	errBlock, ok := out["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SolverInfeasible", errBlock["code"])
}

func TestMarshalIndentProducesIndentedBytes(t *testing.T) {
	doc := Document{PeopleOrder: []string{"a"}}
	data, err := doc.MarshalIndent()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestOrEmptyHelpersNeverReturnNil(t *testing.T) {
	assert.Equal(t, []string{}, orEmptyStrings(nil))
	assert.Equal(t, []Assignment{}, orEmptyAssignments(nil))
	assert.Equal(t, []MatrixRow{}, orEmptyRows(nil))
}

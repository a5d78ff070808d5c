package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeightsDefaults(t *testing.T) {
	var errs ValidationErrors
	w, warnings := resolveWeights(nil, &errs)
	assert.Equal(t, DefaultWeights(), w)
	assert.Empty(t, warnings)
	assert.Empty(t, errs)
}

func TestResolveWeightsAliasesCaseInsensitive(t *testing.T) {
	raw := map[string]json.Number{
		"W_Shortage":               json.Number("2000"),
		"w_wish_off_violation":     json.Number("30"),
		"W_BALANCE":                json.Number("7"),
	}
	var errs ValidationErrors
	w, warnings := resolveWeights(raw, &errs)
	require.Empty(t, errs)
	assert.Empty(t, warnings)
	assert.Equal(t, 2000, w.Shortage)
	assert.Equal(t, 30, w.RequestedOffViolation)
	assert.Equal(t, 7, w.BalanceWorkdays)
}

func TestResolveWeightsUnknownKeyWarns(t *testing.T) {
	raw := map[string]json.Number{"w_mystery": json.Number("1")}
	var errs ValidationErrors
	_, warnings := resolveWeights(raw, &errs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "w_mystery")
	assert.Empty(t, errs)
}

func TestResolveWeightsNegativeRejected(t *testing.T) {
	raw := map[string]json.Number{"shortage": json.Number("-1")}
	var errs ValidationErrors
	resolveWeights(raw, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, KindInvalidField, errs[0].Kind)
}

func TestResolveWeightsNonIntegerRejected(t *testing.T) {
	raw := map[string]json.Number{"shortage": json.Number("1.5")}
	var errs ValidationErrors
	resolveWeights(raw, &errs)
	require.Len(t, errs, 1)
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNeedTemplateLegacySplit(t *testing.T) {
	raw := map[string]map[string]int{
		"weekday": {"9-15": 4, "18-24": 2},
	}
	out, warnings := expandNeedTemplate(raw, nil)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "18-24")
	assert.Equal(t, 2, out["weekday"]["18-21"])
	assert.Equal(t, 0, out["weekday"]["21-23"])
	_, hasLegacyKey := out["weekday"]["18-24"]
	assert.False(t, hasLegacyKey)
}

func TestExpandNeedTemplateLegacyDoesNotOverrideExplicitSplit(t *testing.T) {
	raw := map[string]map[string]int{
		"weekday": {"18-24": 9, "18-21": 3, "21-23": 1},
	}
	out, warnings := expandNeedTemplate(raw, nil)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, out["weekday"]["18-21"])
	assert.Equal(t, 1, out["weekday"]["21-23"])
}

func TestExpandNeedTemplateNoLegacyKeyPassesThrough(t *testing.T) {
	raw := map[string]map[string]int{
		"weekday": {"9-15": 2, "18-21": 1, "21-23": 1},
	}
	out, warnings := expandNeedTemplate(raw, nil)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, out["weekday"]["9-15"])
	assert.Equal(t, 1, out["weekday"]["18-21"])
}

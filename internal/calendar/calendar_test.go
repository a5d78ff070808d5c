package calendar

import (
	"testing"

	"github.com/carehome/roster-solver/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() *schema.Input {
	return &schema.Input{
		Days:          2,
		DayTypeByDate: []string{"weekday", "weekend"},
		NeedTemplate: map[string]map[string]int{
			"weekday": {"9-15": 2, "18-21": 1},
			"weekend": {"9-15": 1},
		},
	}
}

func TestExpandBasicTotals(t *testing.T) {
	d := Expand(baseInput())
	require.Len(t, d.PerDayTotals, 2)
	assert.Equal(t, 3, d.PerDayTotals[0].Total)
	assert.Equal(t, 1, d.PerDayTotals[1].Total)
	assert.Equal(t, 4, d.TotalNeed)
	assert.False(t, d.PerDayTotals[0].CarryApplied)
}

func TestExpandMissingDayTypeWarnsAndZeroes(t *testing.T) {
	in := baseInput()
	in.DayTypeByDate = []string{"weekday", "holiday"}
	d := Expand(in)
	require.NotEmpty(t, d.Warnings)
	assert.Equal(t, 0, d.PerDayTotals[1].Total)
}

func TestExpandStrictNightOverridesAndFlagsCarry(t *testing.T) {
	in := baseInput()
	in.StrictNight = &schema.StrictNight{
		Slot21_23: 2, Slot0_7: 1, Slot1821Min: 0, Slot1821Max: 0,
	}
	d := Expand(in)
	assert.Equal(t, 2, d.Need[1]["21-23"])
	assert.Equal(t, 1, d.Need[1]["0-7"])
	assert.Equal(t, 0, d.Need[1]["18-21"]) // clamped to max
	assert.True(t, d.PerDayTotals[0].CarryApplied)
}

func TestExpandStrictNightClampWithinRangeLeavesValueUnchanged(t *testing.T) {
	in := baseInput()
	in.StrictNight = &schema.StrictNight{
		Slot21_23: 0, Slot0_7: 0, Slot1821Min: 0, Slot1821Max: 5,
	}
	d := Expand(in)
	assert.Equal(t, 1, d.Need[1]["18-21"])
}

func TestExpandZeroDaysYieldsEmptyDemand(t *testing.T) {
	in := baseInput()
	in.Days = 0
	d := Expand(in)
	assert.Empty(t, d.PerDayTotals)
	assert.Equal(t, 0, d.TotalNeed)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, clamp(3, 0, 5))
	assert.Equal(t, 0, clamp(-1, 0, 5))
	assert.Equal(t, 5, clamp(9, 0, 5))
}

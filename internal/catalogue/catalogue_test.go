package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	shift, ok := Lookup(DA)
	require.True(t, ok)
	assert.Equal(t, "Day A", shift.Name)

	_, ok = Lookup(Code("ZZ"))
	assert.False(t, ok)
}

func TestIsNight(t *testing.T) {
	for _, c := range []Code{NA, NB, NC} {
		assert.True(t, IsNight(c), "%s should be a night code", c)
	}
	for _, c := range []Code{EA, DA, DB, LA} {
		assert.False(t, IsNight(c), "%s should not be a night code", c)
	}
}

func TestCoversSlot(t *testing.T) {
	tests := []struct {
		name  string
		shift Shift
		slot  string
		want  bool
	}{
		{"early covers 7-9", Shift{Start: 7, End: 15}, "7-9", true},
		{"early does not cover 16-18", Shift{Start: 7, End: 15}, "16-18", false},
		{"day-b boundary at 18 excluded", Shift{Start: 9, End: 18}, "18-21", false},
		{"late covers 18-21", Shift{Start: 15, End: 21}, "18-21", true},
		{"night-a wraps past midnight into 0-7", Shift{Start: 21, End: 7}, "0-7", true},
		{"night-a covers 21-23", Shift{Start: 21, End: 7}, "21-23", true},
		{"night-a does not cover 16-18", Shift{Start: 21, End: 7}, "16-18", false},
		{"night-c wraps and covers 7-9 up to hour 8", Shift{Start: 23, End: 8}, "7-9", true},
		{"unknown slot never covered", Shift{Start: 0, End: 24}, "nonexistent", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoversSlot(tt.shift, tt.slot))
		})
	}
}

func TestCoversSlotByCode(t *testing.T) {
	assert.True(t, CoversSlotByCode(NA, "0-7"))
	assert.False(t, CoversSlotByCode(Code("ZZ"), "0-7"))
}

func TestSlotsAndCodesAreStable(t *testing.T) {
	// The declaration order is a stable sort key used elsewhere (model
	// building, rendering); guard against accidental reordering.
	require.Len(t, Codes, 7)
	assert.Equal(t, EA, Codes[0].Code)
	assert.Equal(t, NC, Codes[len(Codes)-1].Code)
	require.Len(t, Slots, 6)
	assert.Equal(t, "7-9", Slots[0])
}

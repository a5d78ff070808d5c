package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDateSetDropsOutOfRange(t *testing.T) {
	set, warnings := toDateSet([]int{1, 5, 31}, 5, "alice", "unavailableDates")
	require.Len(t, warnings, 1)
	assert.True(t, set[1])
	assert.True(t, set[5])
	assert.False(t, set[31])
}

func TestToDateSetUnboundedHorizonSkipsRangeCheck(t *testing.T) {
	set, warnings := toDateSet([]int{1, 5, 999}, 0, "alice", "unavailableDates")
	assert.Empty(t, warnings)
	assert.True(t, set[999])
}

func TestValidatePeopleNoCanWorkEntriesWarns(t *testing.T) {
	var errs ValidationErrors
	_, warnings := validatePeople([]RawPerson{{ID: "bob"}}, nil, 5, nil, &errs)
	require.Empty(t, errs)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "bob")
}

func TestValidatePeopleEmptyIDRejected(t *testing.T) {
	var errs ValidationErrors
	validatePeople([]RawPerson{{ID: ""}}, nil, 5, nil, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, KindInvalidField, errs[0].Kind)
}

func TestValidatePeopleDefaultConsecMaxApplied(t *testing.T) {
	var errs ValidationErrors
	people, _ := validatePeople([]RawPerson{{ID: "carol", CanWork: []string{"DA"}}}, nil, 5, nil, &errs)
	require.Empty(t, errs)
	require.Len(t, people, 1)
	assert.Equal(t, DefaultConsecMax, people[0].ConsecMax)
}

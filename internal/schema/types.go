// Package schema parses, validates and normalises the roster solver's
// input document, and defines the sum-typed internal representation
// that every downstream component (calendar, availability, model,
// render) consumes. Nothing outside this package touches the raw,
// loosely-typed JSON shape.
package schema

import "github.com/carehome/roster-solver/internal/catalogue"

// Input is the fully normalised, validated input document (§3/§4.1).
type Input struct {
	Year          int
	Month         int
	Days          int
	WeekdayOfDay1 int

	// PreviousMonthNightCarry maps a night code to the set of staff IDs
	// who worked it on the last date of the prior month.
	PreviousMonthNightCarry map[catalogue.Code]map[string]bool

	Shifts       map[catalogue.Code]catalogue.Shift
	NeedTemplate map[string]map[string]int // dayType -> slot -> need
	DayTypeByDate []string

	StrictNight *StrictNight

	People []Person
	Rules  Rules
	Weights Weights

	// Warnings accumulated during validation/normalisation (§7); never
	// aborts the pipeline.
	Warnings []string
}

// StrictNight holds the mandatory 18-24 band overrides (§3).
type StrictNight struct {
	Slot21_23   int
	Slot0_7     int
	Slot1821Min int
	Slot1821Max int
}

// Person is one normalised staff record (§3).
type Person struct {
	ID      string
	CanWork []catalogue.Code

	// FixedOffWeekdays is a set over the 0-6 domain (0 = Sunday).
	FixedOffWeekdays map[int]bool

	WeeklyMin, WeeklyMax   int
	MonthlyMin, MonthlyMax int
	ConsecMax              int

	UnavailableDates  map[int]bool
	RequestedOffDates map[int]bool

	// RequestedOffWeight overrides Weights.RequestedOffViolation for
	// this person when strictly positive (§4.5 / §9).
	RequestedOffWeight int
}

// CanWorkSet returns p.CanWork as a lookup set.
func (p Person) CanWorkSet() map[catalogue.Code]bool {
	set := make(map[catalogue.Code]bool, len(p.CanWork))
	for _, c := range p.CanWork {
		set[c] = true
	}
	return set
}

// Rules holds the scheduling rule toggles (§3).
type Rules struct {
	NoEarlyAfterDayAB bool
	// NightRest maps a night code to the required rest-day count after
	// it is worked. Defaults: NA=2, NB=1, NC=1.
	NightRest map[catalogue.Code]int
}

// Weights holds the objective's non-negative integer weights (§3/§4.5).
type Weights struct {
	Shortage               int
	OverstaffGtNeedPlus1   int
	RequestedOffViolation  int
	// BalanceWorkdays and FillPreferenceBonus are the reserved terms
	// mentioned in §4.5; they default to 0 and are only wired into the
	// objective when set (see internal/model).
	BalanceWorkdays     int
	FillPreferenceBonus int
}

// DefaultWeights returns the documented default weights (§3).
func DefaultWeights() Weights {
	return Weights{
		Shortage:              1000,
		OverstaffGtNeedPlus1:  5,
		RequestedOffViolation: 20,
	}
}

// DefaultNightRest returns the documented default rest requirements (§3).
func DefaultNightRest() map[catalogue.Code]int {
	return map[catalogue.Code]int{
		catalogue.NA: 2,
		catalogue.NB: 1,
		catalogue.NC: 1,
	}
}

// DefaultConsecMax is applied to a person when consecMax is absent or <= 0.
const DefaultConsecMax = 5

// DefaultTimeLimitSeconds is the solver wall-clock ceiling (§4.6/§6)
// used when neither --time_limit nor ROSTER_TIME_LIMIT is set.
const DefaultTimeLimitSeconds = 60

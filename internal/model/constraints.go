package model

import (
	"fmt"

	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/solverbackend"
)

// addAtMostOneShiftPerDay imposes Σ_s x[p,d,s] ≤ 1 for every (p,d)
// (§3 invariant, §4.4.1).
func (m *Model) addAtMostOneShiftPerDay() {
	for pi, p := range m.Input.People {
		codes := m.canWorkOrdered(p)
		for d := 1; d <= m.Input.Days; d++ {
			var terms []solverbackend.Term
			for _, code := range codes {
				v, _ := m.X(pi, d, code)
				terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
			}
			if len(terms) > 0 {
				m.Backend.AddLinearLE(terms, 1)
			}
		}
	}
}

// addFixedUnavailability zeroes out every x[p,d,s] on a date the person
// is hard-unavailable for, by weekday or by explicit date (§4.4.2).
func (m *Model) addFixedUnavailability() {
	for pi, p := range m.Input.People {
		codes := m.canWorkOrdered(p)
		for d := 1; d <= m.Input.Days; d++ {
			weekday := weekdayOf(m.Input.WeekdayOfDay1, d)
			if !p.UnavailableDates[d] && !p.FixedOffWeekdays[weekday] {
				continue
			}
			for _, code := range codes {
				v, _ := m.X(pi, d, code)
				m.Backend.AddLinearEQ(solverbackend.Sum(v), 0)
			}
		}
	}
}

// addCoverageAndOverstaff imposes the soft coverage identity and
// overstaffing cap for every (date, slot) (§3 invariant, §4.4.3-4).
//
// The 0-7 slot of date d is covered by night shifts assigned on date
// d-1, never date d's own (§4.2: a night shift physically spans from
// the prior evening into this morning), so it is built separately from
// the same-date slotCoverageTerms used for every other slot.
func (m *Model) addCoverageAndOverstaff() {
	for d := 1; d <= m.Input.Days; d++ {
		for _, slot := range catalogue.Slots {
			var terms []solverbackend.Term
			var carry int64
			if slot == "0-7" {
				terms, carry = m.nightCoverageTerms(d)
			} else {
				terms = m.slotCoverageTerms(d, slot)
			}
			need := int64(m.Demand.Need[d][slot]) - carry
			if need < 0 {
				need = 0
			}

			shortage := m.Shortage(d, slot)
			ge := append(append([]solverbackend.Term{}, terms...), solverbackend.Term{Var: shortage, Coeff: 1})
			m.Backend.AddLinearGE(ge, need)

			over := m.Over(d, slot)
			le := append([]solverbackend.Term{}, terms...)
			le = append(le, solverbackend.Term{Var: over, Coeff: -1})
			m.Backend.AddLinearLE(le, need+1)
		}
	}
}

// addStrictNightHeadcount imposes the hard equalities/bounds for the
// 18-24 band override, when strictNight is supplied (§3, §4.4.5).
func (m *Model) addStrictNightHeadcount() {
	sn := m.Input.StrictNight
	if sn == nil {
		return
	}
	for d := 1; d <= m.Input.Days; d++ {
		m.Backend.AddLinearEQ(m.slotCoverageTerms(d, "21-23"), int64(sn.Slot21_23))

		night07Terms, carry := m.nightCoverageTerms(d)
		target := int64(sn.Slot0_7) - carry
		if target < 0 {
			target = 0
		}
		m.Backend.AddLinearEQ(night07Terms, target)

		terms := m.slotCoverageTerms(d, "18-21")
		m.Backend.AddLinearGE(terms, int64(sn.Slot1821Min))
		m.Backend.AddLinearLE(terms, int64(sn.Slot1821Max))
	}
}

func (m *Model) slotCoverageTerms(d int, slot string) []solverbackend.Term {
	var terms []solverbackend.Term
	for pi, p := range m.Input.People {
		for _, code := range m.canWorkOrdered(p) {
			shift, ok := m.Input.Shifts[code]
			if !ok || !catalogue.CoversSlot(shift, slot) {
				continue
			}
			v, _ := m.X(pi, d, code)
			terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
		}
	}
	return terms
}

// nightCoverageTerms returns the decision-variable terms that cover
// date d's 0-7 slot, plus any fixed (non-variable) headcount folded in
// from outside the horizon. A night shift physically spans from the
// evening it was assigned into the following morning (§4.2), so date
// d's 0-7 coverage comes from night shifts assigned on date d-1, not
// date d. Date 1 has no in-horizon "yesterday"; previousMonthNightCarry
// records who worked a night shift on the last date of the prior
// month, and that headcount is already a settled fact rather than a
// decision variable, so it is returned as a constant instead of a term.
func (m *Model) nightCoverageTerms(d int) ([]solverbackend.Term, int64) {
	if d == 1 {
		return nil, m.previousNightCarryCount()
	}
	prev := d - 1
	var terms []solverbackend.Term
	for pi, p := range m.Input.People {
		canWork := p.CanWorkSet()
		for _, night := range catalogue.NightCodes {
			if !canWork[night] {
				continue
			}
			if _, ok := m.Input.Shifts[night]; !ok {
				continue
			}
			v, ok := m.X(pi, prev, night)
			if !ok {
				continue
			}
			terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
		}
	}
	return terms, 0
}

// previousNightCarryCount counts the distinct people previousMonthNightCarry
// records as having worked any night code on the last date of the prior
// month — the fixed headcount already covering date 1's 0-7 slot.
func (m *Model) previousNightCarryCount() int64 {
	seen := make(map[string]bool)
	for _, ids := range m.Input.PreviousMonthNightCarry {
		for id := range ids {
			seen[id] = true
		}
	}
	return int64(len(seen))
}

// isoWeeks partitions [1..days] into week-long windows, each anchored so
// that weekday 1 (Monday, per ISO 8601) starts a new week. The window
// containing date 1 and the window containing date `days` may both be
// partial; per the documented policy (SPEC_FULL.md §C) the full cap
// still applies to whatever intersects the horizon, and a warning names
// every partial week.
func isoWeeks(weekdayOfDay1, days int) (weeks [][]int, partial []string) {
	if days <= 0 {
		return nil, nil
	}
	// Convert the 0=Sunday convention to ISO's 1=Monday..7=Sunday so
	// week boundaries fall on Mondays.
	isoWeekday := func(date int) int {
		wd := (weekdayOfDay1 + (date - 1)) % 7 // 0=Sunday..6=Saturday
		return (wd+6)%7 + 1                     // 1=Monday..7=Sunday
	}

	var current []int
	for d := 1; d <= days; d++ {
		if isoWeekday(d) == 1 && len(current) > 0 {
			weeks = append(weeks, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		weeks = append(weeks, current)
	}

	for i, w := range weeks {
		if len(w) < 7 {
			partial = append(partial, fmt.Sprintf("week %d (dates %d-%d) is partial (%d of 7 days); full caps applied to the intersection", i+1, w[0], w[len(w)-1], len(w)))
		}
	}
	return weeks, partial
}

// addWeeklyCaps imposes weeklyMin/weeklyMax over each ISO week
// intersected with the horizon (§4.4.6).
func (m *Model) addWeeklyCaps() {
	weeks, partial := isoWeeks(m.Input.WeekdayOfDay1, m.Input.Days)
	m.Warnings = append(m.Warnings, partial...)

	for pi, p := range m.Input.People {
		codes := m.canWorkOrdered(p)
		for _, week := range weeks {
			var terms []solverbackend.Term
			for _, d := range week {
				for _, code := range codes {
					v, _ := m.X(pi, d, code)
					terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
				}
			}
			if len(terms) == 0 {
				continue
			}
			if p.WeeklyMax > 0 {
				m.Backend.AddLinearLE(terms, int64(p.WeeklyMax))
			}
			if p.WeeklyMin > 0 {
				m.Backend.AddLinearGE(terms, int64(p.WeeklyMin))
			}
		}
	}
}

// addMonthlyCaps imposes monthlyMin/monthlyMax over the full horizon
// (§4.4.7).
func (m *Model) addMonthlyCaps() {
	for pi, p := range m.Input.People {
		if p.MonthlyMax <= 0 && p.MonthlyMin <= 0 {
			continue
		}
		var terms []solverbackend.Term
		for _, code := range m.canWorkOrdered(p) {
			for d := 1; d <= m.Input.Days; d++ {
				v, _ := m.X(pi, d, code)
				terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
			}
		}
		if len(terms) == 0 {
			continue
		}
		if p.MonthlyMax > 0 {
			m.Backend.AddLinearLE(terms, int64(p.MonthlyMax))
		}
		if p.MonthlyMin > 0 {
			m.Backend.AddLinearGE(terms, int64(p.MonthlyMin))
		}
	}
}

// addConsecutiveDayCap imposes, for every window of consecMax+1
// contiguous dates, that at most consecMax of them are worked (§4.4.8).
func (m *Model) addConsecutiveDayCap() {
	for pi, p := range m.Input.People {
		codes := m.canWorkOrdered(p)
		window := p.ConsecMax + 1
		for start := 1; start+window-1 <= m.Input.Days; start++ {
			var terms []solverbackend.Term
			for d := start; d < start+window; d++ {
				for _, code := range codes {
					v, _ := m.X(pi, d, code)
					terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
				}
			}
			if len(terms) > 0 {
				m.Backend.AddLinearLE(terms, int64(p.ConsecMax))
			}
		}
	}
}

// addPostNightRest imposes the rest-day rule after every night shift,
// including the phantom assignments implied by previousMonthNightCarry
// for dates near the start of the horizon (§3, §4.4.9).
func (m *Model) addPostNightRest() {
	for pi, p := range m.Input.People {
		canWork := p.CanWorkSet()
		for _, night := range catalogue.NightCodes {
			rest := m.Input.Rules.NightRest[night]
			if rest <= 0 {
				continue
			}
			if canWork[night] {
				if _, ok := m.Input.Shifts[night]; ok {
					for d := 1; d <= m.Input.Days; d++ {
						nv, ok := m.X(pi, d, night)
						if !ok {
							continue
						}
						for k := 1; k <= rest; k++ {
							d2 := d + k
							if d2 > m.Input.Days {
								break
							}
							m.addBlockingConstraint(pi, nv, d2)
						}
					}
				}
			}
			if m.Input.PreviousMonthNightCarry[night][p.ID] {
				for k := 1; k <= rest; k++ {
					if k > m.Input.Days {
						break
					}
					m.addBlockingConstraintPhantom(pi, k)
				}
			}
		}
	}
}

// addBlockingConstraint imposes x[p,d,n] + Σ_s x[p,d2,s] ≤ 1.
func (m *Model) addBlockingConstraint(pi int, nightVar solverbackend.Var, d2 int) {
	terms := []solverbackend.Term{{Var: nightVar, Coeff: 1}}
	for _, code := range m.canWorkOrdered(m.Input.People[pi]) {
		v, _ := m.X(pi, d2, code)
		terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
	}
	m.Backend.AddLinearLE(terms, 1)
}

// addBlockingConstraintPhantom handles the previousMonthNightCarry
// case: the phantom night assignment is always 1, so the constraint
// collapses to Σ_s x[p,d2,s] ≤ 0, i.e. the person is off on date d2.
func (m *Model) addBlockingConstraintPhantom(pi, d2 int) {
	var terms []solverbackend.Term
	for _, code := range m.canWorkOrdered(m.Input.People[pi]) {
		v, _ := m.X(pi, d2, code)
		terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
	}
	if len(terms) > 0 {
		m.Backend.AddLinearLE(terms, 0)
	}
}

// addNoEarlyAfterDayAB forbids EA the day after a DA/DB, when enabled
// (§4.4.10).
func (m *Model) addNoEarlyAfterDayAB() {
	if !m.Input.Rules.NoEarlyAfterDayAB {
		return
	}
	for pi, p := range m.Input.People {
		canWork := p.CanWorkSet()
		if !canWork[catalogue.EA] {
			continue
		}
		if _, ok := m.Input.Shifts[catalogue.EA]; !ok {
			continue
		}
		for d := 1; d < m.Input.Days; d++ {
			eaNext, ok := m.X(pi, d+1, catalogue.EA)
			if !ok {
				continue
			}
			var terms []solverbackend.Term
			for _, dayCode := range []catalogue.Code{catalogue.DA, catalogue.DB} {
				if !canWork[dayCode] {
					continue
				}
				if v, ok := m.X(pi, d, dayCode); ok {
					terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
				}
			}
			if len(terms) == 0 {
				continue
			}
			terms = append(terms, solverbackend.Term{Var: eaNext, Coeff: 1})
			m.Backend.AddLinearLE(terms, 1)
		}
	}
}

// addRequestedOffLinking links violateOff[p,d] = Σ_s x[p,d,s] for every
// requested-off date (§4.4.11).
func (m *Model) addRequestedOffLinking() {
	for pi, p := range m.Input.People {
		codes := m.canWorkOrdered(p)
		for d := range p.RequestedOffDates {
			violate, ok := m.ViolateOff(pi, d)
			if !ok {
				continue
			}
			terms := []solverbackend.Term{{Var: violate, Coeff: -1}}
			for _, code := range codes {
				v, _ := m.X(pi, d, code)
				terms = append(terms, solverbackend.Term{Var: v, Coeff: 1})
			}
			m.Backend.AddLinearEQ(terms, 0)
		}
	}
}

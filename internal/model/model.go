// Package model builds the CP-SAT decision model described in spec.md
// §3/§4.4/§4.5: the x[p,d,s] assignment variables, the shortage/over/
// violateOff auxiliary variables, the hard constraints, and the
// weighted objective. It depends only on the abstract
// solverbackend.Backend capability, never on a concrete CP-SAT package.
package model

import (
	"fmt"

	"github.com/carehome/roster-solver/internal/calendar"
	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/schema"
	"github.com/carehome/roster-solver/internal/solverbackend"
)

// xKey identifies one x[p,d,s] variable.
type xKey struct {
	Person int // index into PeopleOrder
	Date    int
	Shift   catalogue.Code
}

type dsKey struct {
	Date int
	Slot string
}

type pdKey struct {
	Person int
	Date   int
}

// VarCounts reports how many of each variable family were created
// (§6 diagnostics.var_counts).
type VarCounts struct {
	X          int `json:"x"`
	Shortage   int `json:"shortage"`
	Over       int `json:"over"`
	ViolateOff int `json:"violateOff"`
}

// Model is the built decision model, ready to hand to Backend.Solve.
type Model struct {
	Backend solverbackend.Backend

	Input  *schema.Input
	Demand calendar.Demand

	// PeopleOrder is the input declaration order, the stable primary
	// sort key used throughout (§5 Ordering).
	PeopleOrder []string

	x          map[xKey]solverbackend.Var
	shortage   map[dsKey]solverbackend.Var
	over       map[dsKey]solverbackend.Var
	violateOff map[pdKey]solverbackend.Var

	VarCounts VarCounts
	Warnings  []string
}

// Build constructs decision variables, imposes every hard constraint in
// §4.4, and sets the weighted objective from §4.5. The caller is
// responsible for invoking Backend.Solve afterwards.
func Build(backend solverbackend.Backend, in *schema.Input, demand calendar.Demand) *Model {
	m := &Model{
		Backend:     backend,
		Input:       in,
		Demand:      demand,
		x:           make(map[xKey]solverbackend.Var),
		shortage:    make(map[dsKey]solverbackend.Var),
		over:        make(map[dsKey]solverbackend.Var),
		violateOff:  make(map[pdKey]solverbackend.Var),
	}
	for _, p := range in.People {
		m.PeopleOrder = append(m.PeopleOrder, p.ID)
	}

	m.createAssignmentVars()
	m.createShortageOverVars()
	m.createViolateOffVars()

	m.addAtMostOneShiftPerDay()
	m.addFixedUnavailability()
	m.addCoverageAndOverstaff()
	m.addStrictNightHeadcount()
	m.addWeeklyCaps()
	m.addMonthlyCaps()
	m.addConsecutiveDayCap()
	m.addPostNightRest()
	m.addNoEarlyAfterDayAB()
	m.addRequestedOffLinking()

	m.setObjective()

	return m
}

// canWorkOrdered returns p.CanWork filtered to codes present in
// in.Shifts, in catalogue declaration order (stable secondary sort key,
// §5 Ordering).
func (m *Model) canWorkOrdered(p schema.Person) []catalogue.Code {
	set := p.CanWorkSet()
	var out []catalogue.Code
	for _, s := range catalogue.Codes {
		if set[s.Code] {
			if _, ok := m.Input.Shifts[s.Code]; ok {
				out = append(out, s.Code)
			}
		}
	}
	return out
}

func (m *Model) createAssignmentVars() {
	for pi, p := range m.Input.People {
		for _, code := range m.canWorkOrdered(p) {
			for d := 1; d <= m.Input.Days; d++ {
				name := fmt.Sprintf("x_p%d_d%d_%s", pi, d, code)
				m.x[xKey{Person: pi, Date: d, Shift: code}] = m.Backend.NewBoolVar(name)
				m.VarCounts.X++
			}
		}
	}
}

func (m *Model) createShortageOverVars() {
	for d := 1; d <= m.Input.Days; d++ {
		for _, slot := range catalogue.Slots {
			need := int64(m.Demand.Need[d][slot])
			m.shortage[dsKey{d, slot}] = m.Backend.NewIntVar(0, need, fmt.Sprintf("shortage_d%d_%s", d, slot))
			m.VarCounts.Shortage++
			m.over[dsKey{d, slot}] = m.Backend.NewIntVar(0, bigBound, fmt.Sprintf("over_d%d_%s", d, slot))
			m.VarCounts.Over++
		}
	}
}

func (m *Model) createViolateOffVars() {
	for pi, p := range m.Input.People {
		for d := range p.RequestedOffDates {
			if d < 1 || d > m.Input.Days {
				continue
			}
			m.violateOff[pdKey{pi, d}] = m.Backend.NewBoolVar(fmt.Sprintf("violateOff_p%d_d%d", pi, d))
			m.VarCounts.ViolateOff++
		}
	}
}

// bigBound caps the "over" slack variables; it only needs to be larger
// than the number of people that could ever be assigned in one slot.
const bigBound = 1 << 20

// X returns the assignment variable for (personIndex, date, shift) and
// whether it exists (it may not, if shift is outside that person's
// canWork or the shift isn't in the catalogue subset offered).
func (m *Model) X(personIndex, date int, shift catalogue.Code) (solverbackend.Var, bool) {
	v, ok := m.x[xKey{personIndex, date, shift}]
	return v, ok
}

func (m *Model) Shortage(date int, slot string) solverbackend.Var { return m.shortage[dsKey{date, slot}] }
func (m *Model) Over(date int, slot string) solverbackend.Var     { return m.over[dsKey{date, slot}] }

func (m *Model) ViolateOff(personIndex, date int) (solverbackend.Var, bool) {
	v, ok := m.violateOff[pdKey{personIndex, date}]
	return v, ok
}

// weekdayOf returns the 0-6 weekday of date given the weekday of date 1.
func weekdayOf(weekdayOfDay1, date int) int {
	return (weekdayOfDay1 + (date - 1)) % 7
}

package render

import (
	"sort"
	"strconv"

	"github.com/carehome/roster-solver/internal/availability"
	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/model"
	"github.com/carehome/roster-solver/internal/schema"
	"github.com/carehome/roster-solver/internal/solverbackend"
)

// FromSolution assembles the output document from a solved model
// (§4.7). It is only called when the solver produced at least a
// feasible incumbent; Infeasible documents are built by
// FromValidationErrors and FromSolverFailure.
func FromSolution(in *schema.Input, m *model.Model, result solverbackend.SolveResult, report availability.Report, logOutput string) Document {
	doc := Document{
		PeopleOrder: append([]string{}, m.PeopleOrder...),
	}

	assigned := 0
	shortageTotal := 0
	excessTotal := 0
	wishOffTotal := 0

	for pi, personID := range m.PeopleOrder {
		row := map[int]string{}
		for _, code := range orderedCodes(in, in.People[pi]) {
			for d := 1; d <= in.Days; d++ {
				v, ok := m.X(pi, d, code)
				if !ok {
					continue
				}
				if result.Bool(v) {
					row[d] = string(code)
				}
			}
		}
		for d := 1; d <= in.Days; d++ {
			if shift, ok := row[d]; ok {
				doc.Assignments = append(doc.Assignments, Assignment{Date: d, StaffID: personID, Shift: shift})
				assigned++
			}
		}
	}
	sort.Slice(doc.Assignments, func(i, j int) bool {
		if doc.Assignments[i].Date != doc.Assignments[j].Date {
			return doc.Assignments[i].Date < doc.Assignments[j].Date
		}
		return doc.Assignments[i].StaffID < doc.Assignments[j].StaffID
	})

	byDateStaff := make(map[int]map[string]string, in.Days)
	for _, a := range doc.Assignments {
		if byDateStaff[a.Date] == nil {
			byDateStaff[a.Date] = map[string]string{}
		}
		byDateStaff[a.Date][a.StaffID] = a.Shift
	}
	for d := 1; d <= in.Days; d++ {
		shifts := make(map[string]string, len(m.PeopleOrder))
		for _, personID := range m.PeopleOrder {
			shifts[personID] = byDateStaff[d][personID]
		}
		doc.Matrix = append(doc.Matrix, MatrixRow{Date: d, Shifts: shifts})
	}

	for d := 1; d <= in.Days; d++ {
		for _, slot := range catalogue.Slots {
			shortageTotal += int(result.Value(m.Shortage(d, slot)))
			excessTotal += int(result.Value(m.Over(d, slot)))
		}
	}
	for pi := range in.People {
		for d := range in.People[pi].RequestedOffDates {
			v, ok := m.ViolateOff(pi, d)
			if ok && result.Bool(v) {
				wishOffTotal++
			}
		}
	}

	doc.Summary = Summary{
		Totals: Totals{
			Assigned:            assigned,
			Shortage:            shortageTotal,
			Excess:              excessTotal,
			WishOffViolations:   wishOffTotal,
			ViolatedPreferences: wishOffTotal,
		},
		Diagnostics: DemandDiagnostics{
			Days:          in.Days,
			WeekdayOfDay1: in.WeekdayOfDay1,
			DayTypeSample: m.Demand.DayTypeSample,
			PerDayTotals:  m.Demand.PerDayTotals,
			TotalNeed:     m.Demand.TotalNeed,
			Warnings:      m.Demand.Warnings,
		},
	}

	consistent := doc.Summary.Totals.Shortage == sumShortageDirect(m, result, in) &&
		doc.Summary.Totals.WishOffViolations == doc.Summary.Totals.ViolatedPreferences

	allWarnings := append([]string{}, in.Warnings...)
	allWarnings = append(allWarnings, m.Warnings...)

	doc.Diagnostics = Diagnostics{
		Availability:         stringifyAvailability(report.Available),
		AvailabilityWarnings: report.Warnings,
		Warnings:             allWarnings,
		Flags: Flags{
			InconsistentSummary: !consistent,
			AvailabilityWarning: report.Flag,
		},
		VarCounts: m.VarCounts,
		LogOutput: logOutput,
	}

	return doc
}

// sumShortageDirect recomputes the shortage total directly from the
// solver's variable values, independent of the bookkeeping above, so
// FromSolution can cross-check its own summary (§8 property 3).
func sumShortageDirect(m *model.Model, result solverbackend.SolveResult, in *schema.Input) int {
	total := 0
	for d := 1; d <= in.Days; d++ {
		for _, slot := range catalogue.Slots {
			total += int(result.Value(m.Shortage(d, slot)))
		}
	}
	return total
}

func orderedCodes(in *schema.Input, p schema.Person) []catalogue.Code {
	set := p.CanWorkSet()
	var out []catalogue.Code
	for _, s := range catalogue.Codes {
		if set[s.Code] {
			if _, ok := in.Shifts[s.Code]; ok {
				out = append(out, s.Code)
			}
		}
	}
	return out
}

func stringifyAvailability(available map[int]map[string]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(available))
	for d, slots := range available {
		out[strconv.Itoa(d)] = slots
	}
	return out
}

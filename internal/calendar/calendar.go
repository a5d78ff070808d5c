// Package calendar expands the day-type template into concrete per-date
// slot demand, applying strict-night overrides and producing the
// diagnostic summaries described in spec.md §4.2.
package calendar

import (
	"fmt"

	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/schema"
)

// DayTotals is the per-date diagnostic summary (§6 perDayTotals).
type DayTotals struct {
	Date         int            `json:"date"`
	Total        int            `json:"total"`
	Slots        map[string]int `json:"slots"`
	CarryApplied bool           `json:"carryApplied"`
}

// Demand is the result of expanding the calendar for one input (§4.2).
type Demand struct {
	// Need[d][slot] for d in [1..Days], 1-indexed by date.
	Need          map[int]map[string]int
	PerDayTotals  []DayTotals
	TotalNeed     int
	DayTypeSample []string
	Warnings      []string
}

// Expand materialises per-date slot requirements by looking up
// dayTypeByDate[d-1] in needTemplate, then applying any strictNight
// override. It fails closed (via a warning, not an abort — expansion
// errors are recovered per §7) on a day type missing from the
// template, treating that date's need as all-zero.
func Expand(in *schema.Input) Demand {
	d := Demand{
		Need: make(map[int]map[string]int, in.Days),
	}

	for date := 1; date <= in.Days; date++ {
		dayType := ""
		if date-1 < len(in.DayTypeByDate) {
			dayType = in.DayTypeByDate[date-1]
		}
		template, ok := in.NeedTemplate[dayType]
		if !ok {
			d.Warnings = append(d.Warnings, fmt.Sprintf("date %d: day type %q has no needTemplate entry, treated as zero demand", date, dayType))
			template = map[string]int{}
		}

		slots := make(map[string]int, len(catalogue.Slots))
		for _, slot := range catalogue.Slots {
			slots[slot] = template[slot]
		}

		carryApplied := false
		if in.StrictNight != nil {
			if slots["21-23"] != in.StrictNight.Slot21_23 {
				slots["21-23"] = in.StrictNight.Slot21_23
				carryApplied = true
			}
			if slots["0-7"] != in.StrictNight.Slot0_7 {
				slots["0-7"] = in.StrictNight.Slot0_7
				carryApplied = true
			}
			if clamped := clamp(slots["18-21"], in.StrictNight.Slot1821Min, in.StrictNight.Slot1821Max); clamped != slots["18-21"] {
				slots["18-21"] = clamped
				carryApplied = true
			}
		}

		total := 0
		for _, n := range slots {
			total += n
		}
		d.Need[date] = slots
		d.TotalNeed += total
		d.PerDayTotals = append(d.PerDayTotals, DayTotals{
			Date:         date,
			Total:        total,
			Slots:        slots,
			CarryApplied: carryApplied,
		})
		if len(d.DayTypeSample) < 7 {
			d.DayTypeSample = append(d.DayTypeSample, dayType)
		}
	}

	return d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

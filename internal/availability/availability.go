// Package availability computes, per (date, slot), how many employees
// could possibly cover that slot at all — a diagnostic signal only; it
// never constrains the model (§4.3).
package availability

import (
	"fmt"

	"github.com/carehome/roster-solver/internal/calendar"
	"github.com/carehome/roster-solver/internal/catalogue"
	"github.com/carehome/roster-solver/internal/schema"
)

// Warning is one (date, slot, need, available) tuple where availability
// fell short of demand.
type Warning struct {
	Date      int    `json:"date"`
	Slot      string `json:"slot"`
	Need      int    `json:"need"`
	Available int    `json:"available"`
}

// Report is the availability analyser's full output.
type Report struct {
	// Available[date][slot] = headcount that could possibly cover it.
	Available map[int]map[string]int
	Warnings  []Warning
	Flag      bool
}

// Analyse computes Available and Warnings for every (date, slot) given
// the normalised input and the expanded demand.
func Analyse(in *schema.Input, demand calendar.Demand) Report {
	report := Report{Available: make(map[int]map[string]int, in.Days)}

	for date := 1; date <= in.Days; date++ {
		weekday := weekdayOf(in.WeekdayOfDay1, date)
		slots := make(map[string]int, len(catalogue.Slots))

		for _, slot := range catalogue.Slots {
			var count int
			if slot == "0-7" {
				count = night07Availability(in, date)
			} else {
				for _, p := range in.People {
					if p.UnavailableDates[date] || p.FixedOffWeekdays[weekday] {
						continue
					}
					if personCanCoverSlot(p, in.Shifts, slot) {
						count++
					}
				}
			}
			slots[slot] = count

			need := demand.Need[date][slot]
			if need > 0 && count < need {
				report.Warnings = append(report.Warnings, Warning{Date: date, Slot: slot, Need: need, Available: count})
				report.Flag = true
			}
		}
		report.Available[date] = slots
	}
	return report
}

// night07Availability mirrors the model's night-shift wraparound (§4.2):
// date d's 0-7 slot is physically covered by a night shift assigned on
// date d-1, not date d, so availability for it is evaluated against
// the prior date. Date 1 has no in-horizon "yesterday"; its count is
// instead the fixed headcount previousMonthNightCarry already settled
// from the last date of the prior month.
func night07Availability(in *schema.Input, date int) int {
	if date == 1 {
		seen := make(map[string]bool)
		for _, ids := range in.PreviousMonthNightCarry {
			for id := range ids {
				seen[id] = true
			}
		}
		return len(seen)
	}
	prev := date - 1
	weekday := weekdayOf(in.WeekdayOfDay1, prev)
	count := 0
	for _, p := range in.People {
		if p.UnavailableDates[prev] || p.FixedOffWeekdays[weekday] {
			continue
		}
		if personCanCoverSlot(p, in.Shifts, "0-7") {
			count++
		}
	}
	return count
}

func personCanCoverSlot(p schema.Person, shifts map[catalogue.Code]catalogue.Shift, slot string) bool {
	for _, code := range p.CanWork {
		shift, ok := shifts[code]
		if !ok {
			continue
		}
		if catalogue.CoversSlot(shift, slot) {
			return true
		}
	}
	return false
}

// weekdayOf returns the 0-6 weekday of the given in-horizon date given
// the weekday of date 1.
func weekdayOf(weekdayOfDay1, date int) int {
	return (weekdayOfDay1 + (date - 1)) % 7
}

// String renders a Warning for log lines.
func (w Warning) String() string {
	return fmt.Sprintf("date=%d slot=%s need=%d available=%d", w.Date, w.Slot, w.Need, w.Available)
}

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/carehome/roster-solver/internal/catalogue"
)

// validatePeople normalises the "people" array, unions in the "wishOffs"
// alias (§4.1/§9), and enforces the id-uniqueness invariant (§3).
func validatePeople(raw []RawPerson, wishOffs map[string][]int, days int, warnings []string, errs *ValidationErrors) ([]Person, []string) {
	seen := make(map[string]bool, len(raw))
	out := make([]Person, 0, len(raw))

	for i, rp := range raw {
		field := fmt.Sprintf("people[%d]", i)
		if rp.ID == "" {
			errs.add(KindInvalidField, field+".id", "id must be non-empty")
			continue
		}
		if seen[rp.ID] {
			errs.add(KindDuplicateID, field+".id", "duplicate person id %q", rp.ID)
			continue
		}
		seen[rp.ID] = true

		p := Person{
			ID:                 rp.ID,
			WeeklyMin:          rp.WeeklyMin,
			WeeklyMax:          rp.WeeklyMax,
			MonthlyMin:         rp.MonthlyMin,
			MonthlyMax:         rp.MonthlyMax,
			ConsecMax:          rp.ConsecMax,
			RequestedOffWeight: rp.RequestedOffWeight,
		}
		if p.ConsecMax <= 0 {
			p.ConsecMax = DefaultConsecMax
		}

		for _, c := range rp.CanWork {
			code := catalogue.Code(c)
			if _, ok := catalogue.Lookup(code); !ok {
				errs.add(KindCatalogueMismatch, field+".canWork", "code %q is not in the fixed shift catalogue", c)
				continue
			}
			p.CanWork = append(p.CanWork, code)
		}
		if len(p.CanWork) == 0 {
			warnings = append(warnings, fmt.Sprintf("person %q has no usable canWork entries; no variables will be created", rp.ID))
		}

		p.FixedOffWeekdays = map[int]bool{}
		for j, raw := range rp.FixedOffWeekdays {
			wd, err := parseWeekday(json.RawMessage(raw))
			if err != nil {
				errs.add(KindInvalidField, fmt.Sprintf("%s.fixedOffWeekdays[%d]", field, j), "%v", err)
				continue
			}
			p.FixedOffWeekdays[wd] = true
		}

		var rangeWarnings []string
		p.UnavailableDates, rangeWarnings = toDateSet(rp.UnavailableDates, days, rp.ID, "unavailableDates")
		warnings = append(warnings, rangeWarnings...)

		reqOff := append([]int{}, rp.RequestedOffDates...)
		reqOff = append(reqOff, wishOffs[rp.ID]...)
		p.RequestedOffDates, rangeWarnings = toDateSet(reqOff, days, rp.ID, "requestedOffDates")
		warnings = append(warnings, rangeWarnings...)

		out = append(out, p)
	}
	return out, warnings
}

// toDateSet builds a date lookup set, dropping (with a warning) any
// entry outside [1,days] per §4.1. When days is 0 (not yet known /
// unbounded), no range check is applied.
func toDateSet(days []int, horizon int, personID, field string) (map[int]bool, []string) {
	set := make(map[int]bool, len(days))
	var warnings []string
	for _, d := range days {
		if horizon > 0 && (d < 1 || d > horizon) {
			warnings = append(warnings, fmt.Sprintf("person %q: %s entry %d out of range [1,%d], dropped", personID, field, d, horizon))
			continue
		}
		set[d] = true
	}
	return set, warnings
}

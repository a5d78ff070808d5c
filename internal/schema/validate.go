package schema

import (
	"encoding/json"
	"fmt"

	"github.com/carehome/roster-solver/internal/catalogue"
)

// ParseAndValidate parses raw JSON into a RawInput and normalises it
// into an Input. A hard JSON parse failure is reported as a single
// KindInputParse error; everything else accumulates into the returned
// ValidationErrors so callers see every problem in one pass (§4.1).
func ParseAndValidate(data []byte) (*Input, ValidationErrors) {
	var raw RawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ValidationErrors{{Kind: KindInputParse, Message: err.Error()}}
	}
	return Validate(raw)
}

// Validate normalises and validates an already-parsed RawInput. It is
// also the fixed point of idempotence (§8 property 9): validating an
// already-normalised-then-reserialised document yields the same Input.
func Validate(raw RawInput) (*Input, ValidationErrors) {
	var errs ValidationErrors
	in := &Input{}

	validateCalendarFields(raw, in, &errs)
	in.Shifts = validateShifts(raw.Shifts, &errs)
	in.PreviousMonthNightCarry = validateNightCarry(raw.PreviousMonthNightCarry, &errs)
	in.NeedTemplate, in.Warnings = expandNeedTemplate(raw.NeedTemplate, in.Warnings)
	in.StrictNight = validateStrictNight(raw.StrictNight, &errs)
	in.Rules = validateRules(raw.Rules, &errs)

	var weightWarnings []string
	in.Weights, weightWarnings = resolveWeights(raw.Weights, &errs)
	in.Warnings = append(in.Warnings, weightWarnings...)

	in.People, in.Warnings = validatePeople(raw.People, raw.WishOffs, raw.Days, in.Warnings, &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

func validateCalendarFields(raw RawInput, in *Input, errs *ValidationErrors) {
	in.Year, in.Month, in.Days = raw.Year, raw.Month, raw.Days

	if raw.Year != 0 && (raw.Year < 1970 || raw.Year > 2100) {
		errs.add(KindInvalidField, "year", "must be in [1970,2100], got %d", raw.Year)
	}
	if raw.Month != 0 && (raw.Month < 1 || raw.Month > 12) {
		errs.add(KindInvalidField, "month", "must be in [1,12], got %d", raw.Month)
	}
	if raw.Days != 0 && (raw.Days < 0 || raw.Days > 31) {
		errs.add(KindInvalidField, "days", "must be in [0,31], got %d", raw.Days)
	}
	if raw.DayTypeByDate != nil && raw.Days != 0 && len(raw.DayTypeByDate) != raw.Days {
		errs.add(KindInconsistentDays, "dayTypeByDate", "length %d does not match days=%d", len(raw.DayTypeByDate), raw.Days)
	}
	in.DayTypeByDate = raw.DayTypeByDate

	if len(raw.WeekdayOfDay1) > 0 {
		wd, err := parseWeekday(raw.WeekdayOfDay1)
		if err != nil {
			errs.add(KindInvalidField, "weekdayOfDay1", "%v", err)
		}
		in.WeekdayOfDay1 = wd
	}
}

func validateShifts(raw []RawShift, errs *ValidationErrors) map[catalogue.Code]catalogue.Shift {
	seen := map[catalogue.Code]bool{}
	out := make(map[catalogue.Code]catalogue.Shift)
	for i, rs := range raw {
		code := catalogue.Code(rs.Code)
		if _, ok := catalogue.Lookup(code); !ok {
			errs.add(KindCatalogueMismatch, fmt.Sprintf("shifts[%d].code", i), "code %q is not in the fixed shift catalogue", rs.Code)
			continue
		}
		if seen[code] {
			errs.add(KindDuplicateID, fmt.Sprintf("shifts[%d].code", i), "duplicate shift code %q", rs.Code)
			continue
		}
		seen[code] = true
		if rs.Start < 0 || rs.Start > 24 || rs.End < 0 || rs.End > 24 {
			errs.add(KindInvalidField, fmt.Sprintf("shifts[%d]", i), "start/end must be in [0,24]")
			continue
		}
		name := rs.Name
		if canon, ok := catalogue.Lookup(code); ok && name == "" {
			name = canon.Name
		}
		out[code] = catalogue.Shift{Code: code, Name: name, Start: rs.Start, End: rs.End}
	}
	if len(out) == 0 {
		// Fall back to the full built-in catalogue so a caller that
		// omits "shifts" entirely still gets a usable model.
		for _, s := range catalogue.Codes {
			out[s.Code] = s
		}
	}
	return out
}

func validateNightCarry(raw map[string][]string, errs *ValidationErrors) map[catalogue.Code]map[string]bool {
	out := make(map[catalogue.Code]map[string]bool)
	for codeStr, ids := range raw {
		code := catalogue.Code(codeStr)
		if !catalogue.IsNight(code) {
			errs.add(KindCatalogueMismatch, "previousMonthNightCarry."+codeStr, "code %q is not a night shift", codeStr)
			continue
		}
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		out[code] = set
	}
	return out
}

func validateStrictNight(raw *RawStrictNight, errs *ValidationErrors) *StrictNight {
	if raw == nil {
		return nil
	}
	sn := &StrictNight{}
	if raw.Slot21_23 != nil {
		sn.Slot21_23 = *raw.Slot21_23
	}
	if raw.Slot0_7 != nil {
		sn.Slot0_7 = *raw.Slot0_7
	}
	if raw.Slot1821Min != nil {
		sn.Slot1821Min = *raw.Slot1821Min
	}
	if raw.Slot1821Max != nil {
		sn.Slot1821Max = *raw.Slot1821Max
	} else {
		sn.Slot1821Max = 1 << 30
	}
	if sn.Slot1821Min > sn.Slot1821Max {
		errs.add(KindInvalidField, "strictNight", "18-21_min (%d) must be <= 18-21_max (%d)", sn.Slot1821Min, sn.Slot1821Max)
	}
	return sn
}

func validateRules(raw RawRules, errs *ValidationErrors) Rules {
	rules := Rules{
		NoEarlyAfterDayAB: raw.NoEarlyAfterDayAB,
		NightRest:         DefaultNightRest(),
	}
	for codeStr, v := range raw.NightRest {
		code := catalogue.Code(codeStr)
		if !catalogue.IsNight(code) {
			errs.add(KindCatalogueMismatch, "rules.nightRest."+codeStr, "code %q is not a night shift", codeStr)
			continue
		}
		if v < 0 {
			v = 0
		}
		rules.NightRest[code] = v
	}
	return rules
}

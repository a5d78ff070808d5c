package schema

import (
	"encoding/json"
	"strings"
)

// weightAliases maps every accepted, case-insensitive spelling of a
// weight key (§4.1/§6) to the canonical field it feeds. Unknown keys
// are ignored with a warning rather than rejected.
var weightAliases = map[string]string{
	"w_shortage":                    "shortage",
	"shortage":                      "shortage",
	"w_overstaff_gt_need_plus1":     "overstaff",
	"overstaff":                     "overstaff",
	"w_requested_off_violation":     "requestedOff",
	"w_wish_off_violation":          "requestedOff",
	"requestedoffviolation":         "requestedOff",
	"wishoffviolation":              "requestedOff",
	"balance":                       "balance",
	"w_balance":                     "balance",
	"fillpreference":                "fill",
	"w_fill_preference":             "fill",
}

// resolveWeights merges raw weight overrides onto the documented
// defaults, applying the case-insensitive alias table and recording a
// warning for every key it does not recognise.
func resolveWeights(raw map[string]json.Number, errs *ValidationErrors) (Weights, []string) {
	w := DefaultWeights()
	var warnings []string

	for key, val := range raw {
		canon, ok := weightAliases[strings.ToLower(key)]
		if !ok {
			warnings = append(warnings, "unknown weight key ignored: "+key)
			continue
		}
		n, err := val.Int64()
		if err != nil {
			errs.add(KindInvalidField, "weights."+key, "must be a non-negative integer: %v", err)
			continue
		}
		if n < 0 {
			errs.add(KindInvalidField, "weights."+key, "must be non-negative, got %d", n)
			continue
		}
		switch canon {
		case "shortage":
			w.Shortage = int(n)
		case "overstaff":
			w.OverstaffGtNeedPlus1 = int(n)
		case "requestedOff":
			w.RequestedOffViolation = int(n)
		case "balance":
			w.BalanceWorkdays = int(n)
		case "fill":
			w.FillPreferenceBonus = int(n)
		}
	}
	return w, warnings
}

package schema

import "encoding/json"

// RawInput mirrors the loosely-typed JSON input document (§6) exactly
// as received. It is never used outside the validator/normaliser:
// everything downstream consumes the sum-typed Input produced by
// Validate.
type RawInput struct {
	Year                    int                         `json:"year"`
	Month                   int                         `json:"month"`
	Days                    int                         `json:"days"`
	WeekdayOfDay1           json.RawMessage             `json:"weekdayOfDay1"`
	PreviousMonthNightCarry map[string][]string         `json:"previousMonthNightCarry"`
	Shifts                  []RawShift                  `json:"shifts"`
	NeedTemplate            map[string]map[string]int   `json:"needTemplate"`
	DayTypeByDate           []string                    `json:"dayTypeByDate"`
	StrictNight             *RawStrictNight              `json:"strictNight"`
	People                  []RawPerson                 `json:"people"`
	Rules                   RawRules                    `json:"rules"`
	Weights                 map[string]json.Number      `json:"weights"`
	WishOffs                map[string][]int            `json:"wishOffs"`
}

// RawShift is one entry of the input "shifts" array.
type RawShift struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// RawStrictNight is the optional strict-night override block.
type RawStrictNight struct {
	Slot21_23   *int `json:"21-23"`
	Slot0_7     *int `json:"0-7"`
	Slot1821Min *int `json:"18-21_min"`
	Slot1821Max *int `json:"18-21_max"`
}

// RawPerson mirrors one entry of the input "people" array. The weekday
// field is intentionally left as json.RawMessage so the normaliser can
// accept both encodings documented in §4.1; date fields are plain ints.
type RawPerson struct {
	ID                  string            `json:"id"`
	CanWork             []string          `json:"canWork"`
	FixedOffWeekdays    []json.RawMessage `json:"fixedOffWeekdays"`
	WeeklyMin           int               `json:"weeklyMin"`
	WeeklyMax           int               `json:"weeklyMax"`
	MonthlyMin          int               `json:"monthlyMin"`
	MonthlyMax          int               `json:"monthlyMax"`
	ConsecMax           int               `json:"consecMax"`
	UnavailableDates    []int             `json:"unavailableDates"`
	RequestedOffDates   []int             `json:"requestedOffDates"`
	RequestedOffWeight  int               `json:"requestedOffWeight"`
}

// RawRules mirrors the input "rules" block. Only the field names
// noEarlyAfterDayAB and nightRest are read; no alias spellings of them
// are accepted.
type RawRules struct {
	NoEarlyAfterDayAB bool           `json:"noEarlyAfterDayAB"`
	NightRest         map[string]int `json:"nightRest"`
}

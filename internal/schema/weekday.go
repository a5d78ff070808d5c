package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// japaneseWeekdays maps the single-character labels (日〜土) to the 0-6
// domain, 0 = Sunday, matching the convention used for integer weekday
// encodings elsewhere in the document (§4.1).
var japaneseWeekdays = map[string]int{
	"日": 0,
	"月": 1,
	"火": 2,
	"水": 3,
	"木": 4,
	"金": 5,
	"土": 6,
}

// parseWeekday normalises one raw weekday encoding (a JSON number 0-6,
// or a Japanese single-character label) to the 0-6 domain.
func parseWeekday(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday integer %d out of range [0,6]", n)
		}
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, ok := japaneseWeekdays[s]; ok {
			return d, nil
		}
		if d, err2 := strconv.Atoi(s); err2 == nil && d >= 0 && d <= 6 {
			return d, nil
		}
		return 0, fmt.Errorf("unrecognised weekday label %q", s)
	}
	return 0, fmt.Errorf("weekday entry is neither an integer nor a string")
}

// Package render extracts the solved assignment from a Model and
// SolveResult and assembles the output JSON document described in
// spec.md §4.7/§6.
package render

import (
	"encoding/json"

	"github.com/carehome/roster-solver/internal/availability"
	"github.com/carehome/roster-solver/internal/calendar"
	"github.com/carehome/roster-solver/internal/model"
)

// Assignment is one {date, staffId, shift} entry (§4.7).
type Assignment struct {
	Date    int    `json:"date"`
	StaffID string `json:"staffId"`
	Shift   string `json:"shift"`
}

// MatrixRow is one date's {date, shifts} row, keyed by staff id; an
// empty string encodes "off" (§4.7).
type MatrixRow struct {
	Date   int               `json:"date"`
	Shifts map[string]string `json:"shifts"`
}

// Totals is summary.totals (§6), including the legacy
// violatedPreferences alias of wishOffViolations.
type Totals struct {
	Assigned            int `json:"assigned"`
	Shortage            int `json:"shortage"`
	Excess              int `json:"excess"`
	WishOffViolations   int `json:"wishOffViolations"`
	ViolatedPreferences int `json:"violatedPreferences"`
}

// DemandDiagnostics is summary.diagnostics.demand (§6).
type DemandDiagnostics struct {
	Days          int                   `json:"days"`
	WeekdayOfDay1 int                   `json:"weekdayOfDay1"`
	DayTypeSample []string              `json:"dayTypeSample"`
	PerDayTotals  []calendar.DayTotals  `json:"perDayTotals"`
	TotalNeed     int                   `json:"totalNeed"`
	Warnings      []string              `json:"warnings"`
}

// Summary is the summary block (§6).
type Summary struct {
	Totals      Totals            `json:"totals"`
	Diagnostics DemandDiagnostics `json:"diagnostics"`
}

// Flags is diagnostics.flags (§6).
type Flags struct {
	InconsistentSummary bool `json:"inconsistent_summary"`
	AvailabilityWarning bool `json:"availability_warning"`
}

// Diagnostics is the top-level diagnostics block (§6).
type Diagnostics struct {
	Availability         map[string]map[string]int `json:"availability"`
	AvailabilityWarnings []availability.Warning     `json:"availabilityWarnings"`
	Warnings             []string                   `json:"warnings"`
	Flags                Flags                      `json:"flags"`
	VarCounts            model.VarCounts            `json:"var_counts"`
	LogOutput            string                     `json:"logOutput"`
}

// ErrorInfo is the error block emitted for recovered failures (§7).
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Document is the full output document (§6). Assignments/Matrix/Summary
// are only present when Infeasible is false: the custom MarshalJSON
// below omits them entirely on failure rather than emitting null,
// per §6 "absent optional sections MUST be omitted, not null".
type Document struct {
	PeopleOrder []string
	Assignments []Assignment
	Matrix      []MatrixRow
	Summary     Summary
	Diagnostics Diagnostics

	Infeasible bool
	Reason     string
	Error      *ErrorInfo
}

// MarshalJSON assembles the document field-by-field so that a failed
// run's document contains no assignments/matrix/summary keys at all,
// while a successful run's document contains them even when they are
// legitimately empty (§8 scenario S1: days=0 still yields
// "assignments": [] and "matrix": [], not an omitted key).
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{})
	out["peopleOrder"] = orEmptyStrings(d.PeopleOrder)

	if !d.Infeasible {
		out["assignments"] = orEmptyAssignments(d.Assignments)
		out["matrix"] = orEmptyRows(d.Matrix)
		out["summary"] = d.Summary
	}
	out["diagnostics"] = d.Diagnostics

	if d.Infeasible {
		out["infeasible"] = true
	}
	if d.Reason != "" {
		out["reason"] = d.Reason
	}
	if d.Error != nil {
		out["error"] = d.Error
	}
	return json.Marshal(out)
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyAssignments(a []Assignment) []Assignment {
	if a == nil {
		return []Assignment{}
	}
	return a
}

func orEmptyRows(r []MatrixRow) []MatrixRow {
	if r == nil {
		return []MatrixRow{}
	}
	return r
}

// MarshalIndent pretty-prints the document the way the CLI writes it to
// disk; tests and other callers that only need the wire bytes can use
// json.Marshal(doc) directly.
func (d Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

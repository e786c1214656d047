// Package model defines the domain models for abtrack.
package model

import (
	"strconv"
	"strings"
)

// TimedCodePrefix marks absence codes that carry a minutes quantity
// (partial-day, time-based absences).
const TimedCodePrefix = "T"

// Absence is one recorded absence for one employee on one date.
type Absence struct {
	Date    string `json:"date"`
	Code    string `json:"code"`
	Minutes int    `json:"minutes,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// IsTimed returns true if the absence code designates a time-based,
// partial-day absence.
func (a *Absence) IsTimed() bool {
	return strings.HasPrefix(a.Code, TimedCodePrefix)
}

// IsBlank returns true if the absence has no code. Blank entries are edit
// placeholders and are never persisted.
func (a *Absence) IsBlank() bool {
	return strings.TrimSpace(a.Code) == ""
}

// CellText returns the display text for the absence inside a day cell:
// the code, or the code immediately followed by the minutes for timed
// absences (e.g. "T120").
func (a *Absence) CellText() string {
	if a.IsTimed() && a.Minutes > 0 {
		return a.Code + strconv.Itoa(a.Minutes)
	}
	return a.Code
}

// Employee is one tracked employee record with its absence entries.
// Inactive employees are excluded from table views and aggregation but
// retained in storage.
type Employee struct {
	EmployeeID int       `json:"employeeId"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	Absences   []Absence `json:"absences"`
}

// EntriesOn returns all absence entries for the given YYYY-MM-DD date key.
func (e *Employee) EntriesOn(date string) []Absence {
	var matches []Absence
	for _, a := range e.Absences {
		if a.Date == date {
			matches = append(matches, a)
		}
	}
	return matches
}

// CountOn returns the number of entries matching code on the given date.
func (e *Employee) CountOn(code, date string) int {
	n := 0
	for _, a := range e.Absences {
		if a.Date == date && a.Code == code {
			n++
		}
	}
	return n
}

// CellText joins the display text of all entries for a date with '|',
// matching the grid cell rendering.
func (e *Employee) CellText(date string) string {
	var parts []string
	for _, a := range e.Absences {
		if a.Date == date {
			parts = append(parts, a.CellText())
		}
	}
	return strings.Join(parts, "|")
}

// CommentsOn joins the non-empty comments for a date with "; ".
func (e *Employee) CommentsOn(date string) string {
	var parts []string
	for _, a := range e.Absences {
		if a.Date == date && a.Comment != "" {
			parts = append(parts, a.Comment)
		}
	}
	return strings.Join(parts, "; ")
}

// CodeEntry is one absence-code catalog entry: a short code and its
// human-readable label.
type CodeEntry struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

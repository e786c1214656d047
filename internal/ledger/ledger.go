// Package ledger implements the in-memory absence ledger: it owns the
// employee and code-catalog collections and answers day/month/code queries,
// applies per-date reconciliation edits, and derives tallies.
//
// All operations run synchronously to completion; there is no internal
// locking because the ledger is driven by a single interactive user.
package ledger

import (
	"sort"
	"strings"
	"time"

	"abtrack/internal/dates"
	"abtrack/internal/errors"
	"abtrack/internal/model"
)

// Ledger holds the employee records and the absence-code catalog.
type Ledger struct {
	employees []*model.Employee
	codes     []model.CodeEntry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Load replaces the ledger state with the given collections. Employees are
// sorted by name and codes by code, both case-insensitive ascending with
// ties kept in input order. Sorting is a display convenience only; malformed
// records are tolerated and surface as blank cells downstream.
func (l *Ledger) Load(employees []*model.Employee, codes []model.CodeEntry) {
	l.employees = employees
	l.codes = codes

	sort.SliceStable(l.employees, func(i, j int) bool {
		return strings.ToUpper(l.employees[i].Name) < strings.ToUpper(l.employees[j].Name)
	})
	sort.SliceStable(l.codes, func(i, j int) bool {
		return strings.ToUpper(l.codes[i].Code) < strings.ToUpper(l.codes[j].Code)
	})
}

// Employees returns all employee records in display order.
func (l *Ledger) Employees() []*model.Employee {
	return l.employees
}

// ActiveEmployees returns the employee records shown in table views.
func (l *Ledger) ActiveEmployees() []*model.Employee {
	var active []*model.Employee
	for _, e := range l.employees {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// Codes returns the absence-code catalog in display order.
func (l *Ledger) Codes() []model.CodeEntry {
	return l.codes
}

// FindEmployee resolves an employee name to its record, or nil if none
// matches. Names are the user-facing lookup key; with duplicate names the
// first record in display order wins.
func (l *Ledger) FindEmployee(name string) *model.Employee {
	for _, e := range l.employees {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// EntriesOn returns all absence entries for the named employee on the given
// date key. Unknown employees and dates with no entries both yield an empty
// result; callers seeding an edit session add their own blank placeholder.
func (l *Ledger) EntriesOn(name, date string) []model.Absence {
	emp := l.FindEmployee(name)
	if emp == nil {
		return nil
	}
	return emp.EntriesOn(date)
}

// ReconcileDate atomically replaces the named employee's entries for one
// date: every existing entry for that date is removed, then every entry from
// newEntries with a non-blank code is appended with its date forced to the
// target date. Entries for other dates and other employees are untouched.
// Entries are not deduplicated by code.
func (l *Ledger) ReconcileDate(name, date string, newEntries []model.Absence) error {
	emp := l.FindEmployee(name)
	if emp == nil {
		return errors.ErrEmployeeNotFound
	}

	kept := make([]model.Absence, 0, len(emp.Absences)+len(newEntries))
	for _, a := range emp.Absences {
		if a.Date != date {
			kept = append(kept, a)
		}
	}
	for _, a := range newEntries {
		if a.IsBlank() {
			continue
		}
		a.Date = date
		kept = append(kept, a)
	}

	emp.Absences = kept
	return nil
}

// TallyByCode counts the named employee's entries matching code within the
// given year and month. Unknown employees tally zero.
func (l *Ledger) TallyByCode(name, code string, year int, month time.Month) int {
	emp := l.FindEmployee(name)
	if emp == nil {
		return 0
	}
	n := 0
	for _, a := range emp.Absences {
		if a.Code == code && dates.InMonth(a.Date, year, month) {
			n++
		}
	}
	return n
}

// DailyTally sums, across all active employees, the entries matching the
// given code on the exact date. Recomputed on every render; no caching.
func (l *Ledger) DailyTally(code, date string) int {
	sum := 0
	for _, e := range l.employees {
		if !e.Active {
			continue
		}
		sum += e.CountOn(code, date)
	}
	return sum
}

// AddEmployee appends a new employee record with an empty absence list.
// The assigned id is strictly greater than every existing id (max+1, or 1
// for an empty ledger); ids are never reused within a session.
func (l *Ledger) AddEmployee(name string, active bool) (*model.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ErrBlankEmployeeName
	}

	maxID := 0
	for _, e := range l.employees {
		if e.EmployeeID > maxID {
			maxID = e.EmployeeID
		}
	}

	emp := &model.Employee{
		EmployeeID: maxID + 1,
		Name:       name,
		Active:     active,
		Absences:   []model.Absence{},
	}
	l.employees = append(l.employees, emp)

	sort.SliceStable(l.employees, func(i, j int) bool {
		return strings.ToUpper(l.employees[i].Name) < strings.ToUpper(l.employees[j].Name)
	})

	return emp, nil
}

// SetActive toggles the named employee's active flag.
func (l *Ledger) SetActive(name string, active bool) error {
	emp := l.FindEmployee(name)
	if emp == nil {
		return errors.ErrEmployeeNotFound
	}
	emp.Active = active
	return nil
}

// AddCode appends a catalog entry. Both fields are required; duplicate codes
// are legal (no uniqueness is enforced).
func (l *Ledger) AddCode(code, value string) error {
	if strings.TrimSpace(code) == "" {
		return errors.ErrBlankCode
	}
	if strings.TrimSpace(value) == "" {
		return errors.ErrBlankCodeValue
	}

	l.codes = append(l.codes, model.CodeEntry{Code: code, Value: value})
	sort.SliceStable(l.codes, func(i, j int) bool {
		return strings.ToUpper(l.codes[i].Code) < strings.ToUpper(l.codes[j].Code)
	})
	return nil
}

// RemoveCode removes the catalog entry at the given display index. Removing
// an unknown index is a no-op, and removal never cascades into absence
// entries that reference the removed code.
func (l *Ledger) RemoveCode(index int) {
	if index < 0 || index >= len(l.codes) {
		return
	}
	l.codes = append(l.codes[:index], l.codes[index+1:]...)
}

// RemoveCodeNamed removes the first catalog entry with the given code and
// reports whether one was found.
func (l *Ledger) RemoveCodeNamed(code string) bool {
	for i, c := range l.codes {
		if c.Code == code {
			l.RemoveCode(i)
			return true
		}
	}
	return false
}

// Years returns the distinct years present across all absence entries,
// ascending. Used to populate export pickers.
func (l *Ledger) Years() []int {
	seen := make(map[int]bool)
	for _, e := range l.employees {
		for _, a := range e.Absences {
			if y := dates.Year(a.Date); y != 0 {
				seen[y] = true
			}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

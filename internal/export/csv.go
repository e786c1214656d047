// Package export builds the CSV and snapshot exports. The CSV wire format
// follows the documents this tool has always produced: every field is
// double-quoted with embedded quotes doubled, and records are separated by
// CRLF. encoding/csv quotes only when necessary, so the escaping is done
// here instead.
package export

import (
	"strconv"
	"strings"
	"time"

	"abtrack/internal/dates"
	"abtrack/internal/errors"
	"abtrack/internal/ledger"
	"abtrack/internal/model"
)

// historyHeaders is the employee-history column set.
var historyHeaders = []string{
	"Employee Name", "Employee ID", "Active",
	"Absence Date", "Absence Code", "Minutes", "Comment",
}

// escape double-quotes a CSV field, doubling embedded quotes.
func escape(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// record joins escaped fields into one CSV record.
func record(fields ...string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escape(f)
	}
	return strings.Join(escaped, ",")
}

// activeLabel renders the active flag the way the exports always have.
func activeLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// minutesField renders minutes, blank when unset.
func minutesField(minutes int) string {
	if minutes == 0 {
		return ""
	}
	return strconv.Itoa(minutes)
}

// EmployeeHistory builds the CSV export of one employee's absence history,
// full or restricted to an inclusive [start, end] date range, followed by a
// per-code count summary. An employee with no matching entries still emits
// one row carrying only the identity columns. Summary rows appear in
// first-seen entry order.
func EmployeeHistory(emp *model.Employee, start, end string) string {
	entries := emp.Absences
	if start != "" && end != "" {
		var ranged []model.Absence
		for _, a := range entries {
			if dates.InRange(a.Date, start, end) {
				ranged = append(ranged, a)
			}
		}
		entries = ranged
	}

	lines := []string{record(historyHeaders...)}

	if len(entries) == 0 {
		lines = append(lines, record(
			emp.Name, strconv.Itoa(emp.EmployeeID), activeLabel(emp.Active),
			"", "", "", "",
		))
	}
	for _, a := range entries {
		lines = append(lines, record(
			emp.Name, strconv.Itoa(emp.EmployeeID), activeLabel(emp.Active),
			a.Date, a.Code, minutesField(a.Minutes), a.Comment,
		))
	}

	// Summary section: two blank records, a title, then per-code counts.
	counts := make(map[string]int)
	var order []string
	for _, a := range entries {
		if _, seen := counts[a.Code]; !seen {
			order = append(order, a.Code)
		}
		counts[a.Code]++
	}

	lines = append(lines, "", "", escape("Absence Type Summary"), record("Absence Code", "Count"))
	for _, code := range order {
		lines = append(lines, record(code, strconv.Itoa(counts[code])))
	}

	return strings.Join(lines, "\r\n")
}

// MonthGrid builds the CSV export of one month's day-by-employee grid:
// header of day labels, one row per active employee, cells joining per-day
// entry text with '|'.
func MonthGrid(l *ledger.Ledger, year int, month time.Month) string {
	labels := dates.DayLabels(year, month)

	headers := append([]string{"Employee Name"}, labels...)
	lines := []string{record(headers...)}

	for _, emp := range l.ActiveEmployees() {
		fields := make([]string, 0, len(headers))
		fields = append(fields, emp.Name)
		for _, label := range labels {
			fields = append(fields, emp.CellText(dates.KeyFromLabel(year, month, label)))
		}
		lines = append(lines, record(fields...))
	}

	return strings.Join(lines, "\r\n")
}

// HistoryFilename returns the download-style filename for a history export.
func HistoryFilename(emp *model.Employee, start, end string) string {
	if start != "" && end != "" {
		return emp.Name + "_" + start + "_to_" + end + ".csv"
	}
	return emp.Name + "_history.csv"
}

// MonthGridFilename returns the filename for a month grid export.
func MonthGridFilename(year int, month time.Month) string {
	return "absence_month_" + month.String() + "_" + strconv.Itoa(year) + ".csv"
}

// ResolveEmployee finds the employee to export, surfacing a lookup miss.
func ResolveEmployee(l *ledger.Ledger, name string) (*model.Employee, error) {
	emp := l.FindEmployee(name)
	if emp == nil {
		return nil, errors.ErrEmployeeNotFound
	}
	return emp, nil
}

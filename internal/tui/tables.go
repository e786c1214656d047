package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"abtrack/internal/dates"
	"abtrack/internal/ledger"
)

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTable renders a header row and data rows with per-column widths
// derived from content. Colors apply only when enabled.
func renderTable(headers []string, rows [][]string, color bool) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		cell := pad(h, widths[i])
		if color {
			cell = StyleHeader.Render(cell)
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			text := pad(cell, widths[i])
			if color && i == 0 {
				text = StyleRowLabel.Render(text)
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// AbsenceGrid renders the employee-by-day absence table for a month. Cells
// show entry codes joined with '|' ("V", "T120|V"); comments are not shown
// in the grid (they surface in the edit view).
func AbsenceGrid(l *ledger.Ledger, year int, month time.Month, color bool) string {
	labels := dates.DayLabels(year, month)
	headers := append([]string{"Employee"}, labels...)

	var rows [][]string
	for _, emp := range l.ActiveEmployees() {
		row := make([]string, 0, len(headers))
		row = append(row, emp.Name)
		for _, label := range labels {
			row = append(row, emp.CellText(dates.KeyFromLabel(year, month, label)))
		}
		rows = append(rows, row)
	}

	return renderTable(headers, rows, color)
}

// SummaryTable renders the per-employee, per-code count table for a month.
// Columns are the catalog labels; counts include only entries within the
// selected month.
func SummaryTable(l *ledger.Ledger, year int, month time.Month, color bool) string {
	codes := l.Codes()
	headers := make([]string, 0, len(codes)+1)
	headers = append(headers, "Employee")
	for _, c := range codes {
		headers = append(headers, c.Value)
	}

	var rows [][]string
	for _, emp := range l.ActiveEmployees() {
		row := make([]string, 0, len(headers))
		row = append(row, emp.Name)
		for _, c := range codes {
			row = append(row, strconv.Itoa(l.TallyByCode(emp.Name, c.Code, year, month)))
		}
		rows = append(rows, row)
	}

	return renderTable(headers, rows, color)
}

// DailyTallyTable renders the code-by-day tally grid: for each catalog code,
// the number of absences across all active employees on each day.
func DailyTallyTable(l *ledger.Ledger, year int, month time.Month, color bool) string {
	labels := dates.DayLabels(year, month)
	headers := append([]string{"Absence Code"}, labels...)

	var rows [][]string
	for _, c := range l.Codes() {
		row := make([]string, 0, len(headers))
		row = append(row, c.Code)
		for _, label := range labels {
			row = append(row, strconv.Itoa(l.DailyTally(c.Code, dates.KeyFromLabel(year, month, label))))
		}
		rows = append(rows, row)
	}

	return renderTable(headers, rows, color)
}

// MonthView renders the full month view: the absence grid, the summary
// table, and the daily tally, each under a title.
func MonthView(l *ledger.Ledger, year int, month time.Month, color bool) string {
	title := func(s string) string {
		if color {
			return StyleTitle.Render(s)
		}
		return s
	}

	heading := month.String() + " " + strconv.Itoa(year)

	sections := []string{
		title("Absences: " + heading),
		AbsenceGrid(l, year, month, color),
		title("Summary: " + heading),
		SummaryTable(l, year, month, color),
		title("Daily Tally: " + heading),
		DailyTallyTable(l, year, month, color),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

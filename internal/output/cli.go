package output

import (
	"github.com/charmbracelet/lipgloss"

	"abtrack/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleName = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleComment = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// EmployeeName formats an employee name.
func (c *CLIFormatter) EmployeeName(name string) string {
	if c.IsColorEnabled() {
		return styleName.Render(name)
	}
	return name
}

// Comment formats an absence comment.
func (c *CLIFormatter) Comment(text string) string {
	if c.IsColorEnabled() {
		return styleComment.Render(text)
	}
	return text
}

// PrintEntries prints the absence entries for one employee on one date.
func (c *CLIFormatter) PrintEntries(name, date string, entries []model.Absence) {
	c.Printf("%s on %s\n", c.EmployeeName(name), date)
	if len(entries) == 0 {
		c.Muted("  no absences recorded")
		return
	}
	for _, a := range entries {
		line := "  " + a.CellText()
		if a.Comment != "" {
			line += "  " + c.Comment("\""+a.Comment+"\"")
		}
		c.Println(line)
	}
}

// PrintEmployeeAdded prints a confirmation for a new employee record.
func (c *CLIFormatter) PrintEmployeeAdded(emp *model.Employee) {
	status := "active"
	if !emp.Active {
		status = "inactive"
	}
	c.Success("Added employee " + c.EmployeeName(emp.Name))
	c.Printf("  ID: %d (%s)\n", emp.EmployeeID, status)
}

// PrintReconciled prints a confirmation after a reconcile edit.
func (c *CLIFormatter) PrintReconciled(name, date string, entries []model.Absence) {
	if len(entries) == 0 {
		c.Success("Cleared absences for " + c.EmployeeName(name) + " on " + date)
		return
	}
	c.Success("Saved absences for " + c.EmployeeName(name) + " on " + date)
	for _, a := range entries {
		line := "  " + a.CellText()
		if a.Comment != "" {
			line += "  " + c.Comment("\""+a.Comment+"\"")
		}
		c.Println(line)
	}
}

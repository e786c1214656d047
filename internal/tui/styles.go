// Package tui provides the terminal user interface components for abtrack.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorActive  = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles.
var (
	// StyleTitle is used for table titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleHeader is used for table header cells.
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleRowLabel is used for the sticky first column (names, codes).
	StyleRowLabel = lipgloss.NewStyle().
			Bold(true)

	// StyleCell is used for plain data cells.
	StyleCell = lipgloss.NewStyle()

	// StyleCursor is used for the selected cell in the grid editor.
	StyleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary)

	// StyleDirty is used for the unsaved-changes marker.
	StyleDirty = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// StyleMessage is used for transient status messages.
	StyleMessage = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleErrMessage is used for transient error messages.
	StyleErrMessage = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleEditBox frames the cell edit form.
	StyleEditBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleFieldActive marks the field currently being edited.
	StyleFieldActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ColorActive)
)

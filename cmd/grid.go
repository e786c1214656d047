package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"abtrack/internal/errors"
	"abtrack/internal/tui"
)

// gridCmd launches the interactive month grid editor.
var gridCmd = &cobra.Command{
	Use:     "grid [MONTH] [YEAR]",
	Aliases: []string{"ui", "dashboard"},
	Short:   "Open the interactive month grid editor",
	Long: `Open a full-screen grid of active employees by day for one month. Move
the cursor with the arrow keys, press enter to edit the absence entries
for a cell, and 'w' to save. Editing a cell replaces the entire entry set
for that employee and date.

Examples:
  abtrack grid
  abtrack grid march 2024`,
	Args: cobra.MaximumNArgs(2),
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonthArgs(args)
	if err != nil {
		return err
	}

	model := tui.NewGridModel(ctx.Ledger, year, month, ctx.Save)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.NewSystemError("terminal UI failed", err)
	}
	return nil
}

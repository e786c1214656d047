package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"abtrack/internal/dates"
	"abtrack/internal/output"
	"abtrack/internal/tui"
)

// showCmd renders the month view tables.
var showCmd = &cobra.Command{
	Use:     "show [MONTH] [YEAR]",
	Aliases: []string{"view", "month"},
	Short:   "Show the absence tables for a month",
	Long: `Show the three tables for a month: the employee-by-day absence grid,
the per-code summary, and the daily tally.

The month may be a name, a 1-12 number, or a phrase like 'last month';
it defaults to the current month.

Examples:
  abtrack show
  abtrack show march 2024
  abtrack show "last month"
  abtrack show 3 2024 --format json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// resolveMonthArgs normalizes the optional [MONTH] [YEAR] arguments.
func resolveMonthArgs(args []string) (int, time.Month, error) {
	monthArg := ""
	yearArg := ""
	if len(args) > 0 {
		monthArg = args[0]
	}
	if len(args) > 1 {
		yearArg = args[1]
	}

	month, pinnedYear, err := dates.ParseMonth(monthArg)
	if err != nil {
		return 0, 0, err
	}

	if yearArg == "" && pinnedYear != 0 {
		return pinnedYear, month, nil
	}
	year, err := dates.ParseYear(yearArg)
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	year, month, err := resolveMonthArgs(args)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(buildMonthResponse(year, month))
	}

	color := ctx.Formatter.IsColorEnabled() && ctx.Formatter.Format == output.FormatCLI
	view := tui.MonthView(ctx.Ledger, year, month, color)
	ctx.Formatter.Println(view)

	// The grid is wide; a narrow terminal wraps it badly. Width is measured
	// on the uncolored render so escape codes do not inflate it.
	plain := view
	if color {
		plain = tui.MonthView(ctx.Ledger, year, month, false)
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		if width := lineWidth(plain); width > w {
			ctx.CLIFormatter().Muted("Tables are wider than the terminal; consider 'abtrack export snapshot'.")
		}
	}

	return nil
}

// lineWidth returns the longest line length in a rendered view.
func lineWidth(view string) int {
	widest, current := 0, 0
	for _, r := range view {
		if r == '\n' {
			if current > widest {
				widest = current
			}
			current = 0
			continue
		}
		current++
	}
	if current > widest {
		widest = current
	}
	return widest
}

// buildMonthResponse assembles the JSON view of one month.
func buildMonthResponse(year int, month time.Month) *output.MonthResponse {
	labels := dates.DayLabels(year, month)

	resp := &output.MonthResponse{
		Year:     year,
		Month:    int(month),
		Days:     labels,
		Cells:    make(map[string]map[string]string),
		Comments: make(map[string]map[string]string),
		Summary:  make(map[string]map[string]int),
		Tally:    make(map[string]map[string]int),
	}

	for _, emp := range ctx.Ledger.ActiveEmployees() {
		cells := make(map[string]string)
		comments := make(map[string]string)
		for _, label := range labels {
			key := dates.KeyFromLabel(year, month, label)
			if text := emp.CellText(key); text != "" {
				cells[label] = text
			}
			if text := emp.CommentsOn(key); text != "" {
				comments[label] = text
			}
		}
		resp.Cells[emp.Name] = cells
		resp.Comments[emp.Name] = comments

		summary := make(map[string]int)
		for _, c := range ctx.Ledger.Codes() {
			summary[c.Code] = ctx.Ledger.TallyByCode(emp.Name, c.Code, year, month)
		}
		resp.Summary[emp.Name] = summary
	}

	for _, c := range ctx.Ledger.Codes() {
		tally := make(map[string]int)
		for _, label := range labels {
			tally[label] = ctx.Ledger.DailyTally(c.Code, dates.KeyFromLabel(year, month, label))
		}
		resp.Tally[c.Code] = tally
	}

	return resp
}

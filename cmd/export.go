package cmd

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"abtrack/internal/dates"
	"abtrack/internal/errors"
	"abtrack/internal/export"
)

// Export command flags.
var (
	exportFlagFrom   string
	exportFlagUntil  string
	exportFlagMonth  string
	exportFlagYear   string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump"},
	Short:   "Export absence data",
	Long: `Export absence data as CSV, or the rendered tables as a text snapshot.
Called without a subcommand, lists the years that have recorded absences.

Examples:
  abtrack export
  abtrack export employee "Alice"
  abtrack export employee "Alice" --from 2024-03-01 --until 2024-03-31
  abtrack export month --month march --year 2024
  abtrack export snapshot -o tables.txt`,
	Args: cobra.NoArgs,
	RunE: runExportYears,
}

// exportEmployeeCmd exports one employee's absence history.
var exportEmployeeCmd = &cobra.Command{
	Use:   "employee NAME",
	Short: "Export one employee's absence history as CSV",
	Long: `Export one employee's absence history, full or restricted to an inclusive
date range, followed by a per-code count summary. An employee with no
matching entries still produces one row with the identity columns.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportEmployee,
}

// exportMonthCmd exports the day-by-employee grid of one month.
var exportMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Export one month's day-by-employee grid as CSV",
	RunE:  runExportMonth,
}

// exportSnapshotCmd exports the rendered month tables as text.
var exportSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export the rendered month tables as a text file",
	RunE:  runExportSnapshot,
}

func init() {
	exportEmployeeCmd.Flags().StringVar(&exportFlagFrom, "from", "", "Start of date range (YYYY-MM-DD)")
	exportEmployeeCmd.Flags().StringVar(&exportFlagUntil, "until", "", "End of date range, inclusive (YYYY-MM-DD)")
	exportEmployeeCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (derived from the employee if omitted)")

	exportMonthCmd.Flags().StringVar(&exportFlagMonth, "month", "", "Month name or 1-12 number (default: current)")
	exportMonthCmd.Flags().StringVar(&exportFlagYear, "year", "", "Four-digit year (default: current)")
	exportMonthCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (derived from the month if omitted)")

	exportSnapshotCmd.Flags().StringVar(&exportFlagMonth, "month", "", "Month name or 1-12 number (default: current)")
	exportSnapshotCmd.Flags().StringVar(&exportFlagYear, "year", "", "Four-digit year (default: current)")
	exportSnapshotCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (derived from the month if omitted)")

	exportCmd.AddCommand(exportEmployeeCmd)
	exportCmd.AddCommand(exportMonthCmd)
	exportCmd.AddCommand(exportSnapshotCmd)
	rootCmd.AddCommand(exportCmd)
}

// runExportYears lists the years that have absence entries, the pool the
// month and range exports draw from.
func runExportYears(cmd *cobra.Command, args []string) error {
	years := ctx.Ledger.Years()

	if ctx.IsJSON() {
		if years == nil {
			years = []int{}
		}
		return ctx.Formatter.JSON(map[string]any{"years": years})
	}

	cli := ctx.CLIFormatter()
	if len(years) == 0 {
		cli.Muted("No absence entries recorded yet.")
		return nil
	}
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	cli.Println("Years with recorded absences: " + strings.Join(labels, ", "))
	return nil
}

// resolveExportMonth normalizes the --month/--year flag pair.
func resolveExportMonth() (int, time.Month, error) {
	month, pinnedYear, err := dates.ParseMonth(exportFlagMonth)
	if err != nil {
		return 0, 0, err
	}
	if exportFlagYear == "" && pinnedYear != 0 {
		return pinnedYear, month, nil
	}
	year, err := dates.ParseYear(exportFlagYear)
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func runExportEmployee(cmd *cobra.Command, args []string) error {
	emp, err := export.ResolveEmployee(ctx.Ledger, args[0])
	if err != nil {
		return err
	}

	start, end := exportFlagFrom, exportFlagUntil
	if (start == "") != (end == "") {
		return errors.NewUserError(
			"Incomplete date range",
			"Provide both --from and --until, or neither for the full history")
	}
	if start != "" {
		if start, err = dates.ParseDate(start); err != nil {
			return err
		}
		if end, err = dates.ParseDate(end); err != nil {
			return err
		}
	}

	path := exportFlagOutput
	if path == "" {
		path = export.HistoryFilename(emp, start, end)
	}

	csv := export.EmployeeHistory(emp, start, end)
	if err := writeExport(path, csv); err != nil {
		return err
	}

	reportExport(path)
	return nil
}

func runExportMonth(cmd *cobra.Command, args []string) error {
	year, month, err := resolveExportMonth()
	if err != nil {
		return err
	}

	path := exportFlagOutput
	if path == "" {
		path = export.MonthGridFilename(year, month)
	}

	csv := export.MonthGrid(ctx.Ledger, year, month)
	if err := writeExport(path, csv); err != nil {
		return err
	}

	reportExport(path)
	return nil
}

func runExportSnapshot(cmd *cobra.Command, args []string) error {
	year, month, err := resolveExportMonth()
	if err != nil {
		return err
	}

	path := exportFlagOutput
	if path == "" {
		path = export.SnapshotFilename(year, month)
	}

	if err := export.Snapshot(ctx.Ledger, year, month, path); err != nil {
		return err
	}

	reportExport(path)
	return nil
}

// writeExport writes CSV content, CRLF-terminated, to a file.
func writeExport(path, content string) error {
	if content != "" {
		content += "\r\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewSystemErrorWithOp("export", "cannot write "+path, err)
	}
	return nil
}

// reportExport confirms an export to the user.
func reportExport(path string) {
	ctx.Debugf("wrote %s", path)
	if ctx.IsJSON() {
		ctx.Formatter.JSON(map[string]string{"status": "exported", "path": path})
		return
	}
	ctx.CLIFormatter().Success("Exported " + path)
}


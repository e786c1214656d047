package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"abtrack/internal/dates"
	"abtrack/internal/errors"
	"abtrack/internal/model"
	"abtrack/internal/output"
	"abtrack/internal/validate"
)

// Edit command flags.
var (
	editFlagSet   []string
	editFlagClear bool
)

// editCmd reconciles the absence entries for one employee and date.
var editCmd = &cobra.Command{
	Use:     "edit EMPLOYEE DATE",
	Aliases: []string{"set"},
	Short:   "Replace the absence entries for one employee and date",
	Long: `Replace all absence entries for one employee on one date with a new set.
The replacement is atomic: existing entries for that date are removed and
the new set is appended; entries for other dates are untouched. Entries
with a blank code are dropped, never saved.

Each --set value is CODE[:MINUTES[:COMMENT]]. Minutes apply only to codes
starting with 'T'. --clear replaces the date with the empty set.

The change is persisted immediately on success.

Examples:
  abtrack edit "Alice" 2024-03-05 --set V
  abtrack edit "Alice" 2024-03-05 --set V --set T:120:"dentist visit"
  abtrack edit "Alice" yesterday --clear`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

// entriesCmd lists the absence entries for one employee and date.
var entriesCmd = &cobra.Command{
	Use:   "entries EMPLOYEE DATE",
	Short: "List the absence entries for one employee and date",
	Long: `List all absence entries for one employee on one date. An unknown
employee or an empty date yields an empty result, never an error.

Examples:
  abtrack entries "Alice" 2024-03-05
  abtrack entries "Alice" yesterday`,
	Args: cobra.ExactArgs(2),
	RunE: runEntries,
}

func init() {
	editCmd.Flags().StringArrayVarP(&editFlagSet, "set", "s", nil,
		"Entry to save, as CODE[:MINUTES[:COMMENT]] (repeatable)")
	editCmd.Flags().BoolVar(&editFlagClear, "clear", false,
		"Remove all entries for the date")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(cmd *cobra.Command, args []string) error {
	name := args[0]
	date, err := dates.ParseDate(args[1])
	if err != nil {
		return err
	}

	entries := ctx.Ledger.EntriesOn(name, date)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEntriesResponse(name, date, entries))
	}
	ctx.CLIFormatter().PrintEntries(name, date, entries)
	return nil
}

// parseEntrySpec parses one --set value of the form CODE[:MINUTES[:COMMENT]].
func parseEntrySpec(spec, date string) (model.Absence, error) {
	parts := strings.SplitN(spec, ":", 3)

	entry := model.Absence{
		Date: date,
		Code: strings.TrimSpace(parts[0]),
	}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return model.Absence{}, errors.NewUserErrorWithField("minutes", parts[1],
				"Invalid minutes",
				"Use a number of minutes, e.g. 'T:120'")
		}
		entry.Minutes = minutes
	}
	if len(parts) > 2 {
		comment := parts[2]
		// Strip one wrapping quote pair only; inner quotes are content.
		if len(comment) >= 2 && strings.HasPrefix(comment, `"`) && strings.HasSuffix(comment, `"`) {
			comment = comment[1 : len(comment)-1]
		}
		entry.Comment = comment
	}

	if err := validate.Entry(entry); err != nil {
		return model.Absence{}, err
	}
	return entry, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	date, err := dates.ParseDate(args[1])
	if err != nil {
		return err
	}

	if !editFlagClear && len(editFlagSet) == 0 {
		return errors.NewUserError(
			"Nothing to save",
			"Provide one or more --set entries, or --clear to remove the date's entries")
	}

	var entries []model.Absence
	if !editFlagClear {
		for _, spec := range editFlagSet {
			entry, err := parseEntrySpec(spec, date)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
	}

	if err := ctx.Ledger.ReconcileDate(name, date, entries); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	saved := ctx.Ledger.EntriesOn(name, date)
	ctx.Debugf("reconciled %s on %s (%d entries)", name, date, len(saved))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewEntriesResponse(name, date, saved))
	}
	ctx.CLIFormatter().PrintReconciled(name, date, saved)
	return nil
}

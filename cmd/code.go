package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"abtrack/internal/model"
	"abtrack/internal/output"
	"abtrack/internal/validate"
)

// codeCmd represents the code command.
var codeCmd = &cobra.Command{
	Use:     "code",
	Aliases: []string{"codes"},
	Short:   "Manage the absence-code catalog",
	Long: `List, add, or remove absence codes. Codes starting with 'T' are treated
as time-based absences and carry a minutes quantity. Removing a code never
touches existing absence entries that reference it; they keep displaying
with the orphaned code.

Examples:
  abtrack code list
  abtrack code add V Vacation
  abtrack code add T "Partial day"
  abtrack code remove V`,
	RunE: runCodeList,
}

// codeListCmd lists the catalog.
var codeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the absence-code catalog",
	Args:  cobra.NoArgs,
	RunE:  runCodeList,
}

// codeAddCmd adds a catalog entry.
var codeAddCmd = &cobra.Command{
	Use:   "add CODE VALUE",
	Short: "Add an absence code",
	Args:  cobra.ExactArgs(2),
	RunE:  runCodeAdd,
}

// codeRemoveCmd removes a catalog entry by code or display index.
var codeRemoveCmd = &cobra.Command{
	Use:     "remove CODE|INDEX",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove an absence code",
	Args:    cobra.ExactArgs(1),
	RunE:    runCodeRemove,
}

func init() {
	codeCmd.AddCommand(codeListCmd)
	codeCmd.AddCommand(codeAddCmd)
	codeCmd.AddCommand(codeRemoveCmd)
	rootCmd.AddCommand(codeCmd)
}

func runCodeList(cmd *cobra.Command, args []string) error {
	codes := ctx.Ledger.Codes()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.CodesResponse{Codes: codes, Count: len(codes)})
	}

	cli := ctx.CLIFormatter()
	if len(codes) == 0 {
		cli.Muted("No absence codes yet. Add one with 'abtrack code add CODE VALUE'.")
		return nil
	}

	cli.Title("Absence Codes")
	for i, c := range codes {
		timed := ""
		if strings.HasPrefix(c.Code, model.TimedCodePrefix) {
			timed = "  (time-based)"
		}
		cli.Printf("%2d  %-6s %s%s\n", i, c.Code, c.Value, timed)
	}
	return nil
}

func runCodeAdd(cmd *cobra.Command, args []string) error {
	code, value := args[0], args[1]
	if err := validate.CodePair(code, value); err != nil {
		return err
	}

	if err := ctx.Ledger.AddCode(code, value); err != nil {
		return err
	}
	if err := ctx.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		codes := ctx.Ledger.Codes()
		return ctx.Formatter.JSON(output.CodesResponse{Codes: codes, Count: len(codes)})
	}
	ctx.CLIFormatter().Success("Added code " + code + " (" + value + ")")
	return nil
}

func runCodeRemove(cmd *cobra.Command, args []string) error {
	arg := args[0]

	removed := false
	if index, err := strconv.Atoi(arg); err == nil {
		before := len(ctx.Ledger.Codes())
		ctx.Ledger.RemoveCode(index)
		removed = len(ctx.Ledger.Codes()) < before
	} else {
		removed = ctx.Ledger.RemoveCodeNamed(arg)
	}

	cli := ctx.CLIFormatter()
	if !removed {
		// Removing an unknown code is a no-op, not an error.
		if !ctx.IsJSON() {
			cli.Warning("No such code: " + arg)
		}
		return nil
	}

	if err := ctx.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		codes := ctx.Ledger.Codes()
		return ctx.Formatter.JSON(output.CodesResponse{Codes: codes, Count: len(codes)})
	}
	cli.Success("Removed code " + arg)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
)

// initCmd bootstraps the data directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and empty documents",
	Long: `Create the data directory and write empty employee and code documents.
Documents that already exist are left untouched, so running init twice is safe.

Examples:
  abtrack init
  abtrack --data-dir ./data init`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]any{
			"status":   "initialized",
			"data_dir": ctx.Store.Dir(),
		})
	}

	f := ctx.CLIFormatter()
	f.Success("Initialized data directory")
	f.Muted("  " + ctx.Store.Dir())
	return nil
}

// Package cmd provides the CLI commands for abtrack.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"abtrack/internal/errors"
	"abtrack/internal/logging"
	"abtrack/internal/output"
	"abtrack/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagDataDir string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "abtrack",
	Short: "Track employee absences by day, month, and year",
	Long: `abtrack is a command-line absence tracker. It keeps employee records and
an absence-code catalog in two JSON files, renders month views with summary
and daily tallies, and exports CSV reports.

Examples:
  abtrack show march 2024
  abtrack grid
  abtrack edit "Alice" 2024-03-05 --set V --set T:120:"dentist"
  abtrack employee add "Alice"
  abtrack export month --month 3 --year 2024`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagDataDir != "" {
			opts.DataDir = flagDataDir
		}
		// Bootstrap and version run before the documents exist.
		opts.SkipLoad = cmd.Name() == "init" || cmd.Name() == "version"

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the current month view.
		return runShow(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		Die(err)
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"Data directory (default: XDG data home)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("abtrack %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits. User mistakes exit 2, everything else 1.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError(err.Error(), errors.GetSuggestion(err))
	} else {
		f := output.NewCLIFormatter(&output.Formatter{
			Writer:    os.Stderr,
			Format:    output.FormatCLI,
			ColorMode: output.ColorAuto,
		})
		f.Error(err.Error())
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			f.Muted("  " + suggestion)
		}
	}
	if errors.IsUserError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}

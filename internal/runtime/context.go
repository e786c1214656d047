// Package runtime provides the application runtime context for abtrack.
package runtime

import (
	"os"

	"abtrack/internal/ledger"
	"abtrack/internal/output"
	"abtrack/internal/storage"
)

// Context holds the application runtime context: the persistence adapter,
// the in-memory ledger loaded from it, and the output formatter.
type Context struct {
	Store     *storage.Store
	Ledger    *ledger.Ledger
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DataDir   string
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// SkipLoad creates the context without reading the documents. Used by
	// bootstrap commands that run before any data exists.
	SkipLoad bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DataDir:   storage.DefaultDir(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context. Both documents are read in full and
// fully replace any prior in-memory state; a missing or malformed document
// fails fast rather than silently starting empty.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envDir := os.Getenv("ABTRACK_DATA_DIR"); envDir != "" {
		opts.DataDir = envDir
	}

	store := storage.New(opts.DataDir)
	led := ledger.New()

	if !opts.SkipLoad {
		employees, err := store.LoadEmployees()
		if err != nil {
			return nil, err
		}
		codes, err := store.LoadCodes()
		if err != nil {
			return nil, err
		}
		led.Load(employees, codes)
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Store:     store,
		Ledger:    led,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Save persists the ledger's current state: both documents are overwritten
// in full. On failure the in-memory state is retained unchanged so the user
// may retry.
func (c *Context) Save() error {
	if err := c.Store.SaveEmployees(c.Ledger.Employees()); err != nil {
		return err
	}
	return c.Store.SaveCodes(c.Ledger.Codes())
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}

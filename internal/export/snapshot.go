package export

import (
	"os"
	"strconv"
	"strings"
	"time"

	"abtrack/internal/errors"
	"abtrack/internal/ledger"
	"abtrack/internal/tui"
)

// Snapshot writes the rendered month view (absence grid, summary, daily
// tally) to a text file, without color escapes.
func Snapshot(l *ledger.Ledger, year int, month time.Month, path string) error {
	view := tui.MonthView(l, year, month, false)
	if !strings.HasSuffix(view, "\n") {
		view += "\n"
	}
	if err := os.WriteFile(path, []byte(view), 0644); err != nil {
		return errors.NewSystemErrorWithOp("export", "cannot write "+path, err)
	}
	return nil
}

// SnapshotFilename returns the default filename for a snapshot export.
func SnapshotFilename(year int, month time.Month) string {
	return "absence_tables_" + month.String() + "_" + strconv.Itoa(year) + ".txt"
}

package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abtrack/internal/ledger"
	"abtrack/internal/model"
)

func TestSnapshot(t *testing.T) {
	l := ledger.New()
	l.Load([]*model.Employee{
		{EmployeeID: 1, Name: "Alice", Active: true, Absences: []model.Absence{
			{Date: "2024-03-05", Code: "V"},
		}},
	}, []model.CodeEntry{{Code: "V", Value: "Vacation"}})

	path := filepath.Join(t.TempDir(), "snapshot.txt")
	require.NoError(t, Snapshot(l, 2024, time.March, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Absences: March 2024")
	assert.Contains(t, out, "Alice")
	// No color escapes in the file
	assert.NotContains(t, out, "\x1b[")
}

func TestSnapshotUnwritablePath(t *testing.T) {
	err := Snapshot(ledger.New(), 2024, time.March,
		filepath.Join(t.TempDir(), "missing", "snapshot.txt"))
	assert.Error(t, err)
}

func TestSnapshotFilename(t *testing.T) {
	assert.Equal(t, "absence_tables_March_2024.txt", SnapshotFilename(2024, time.March))
}

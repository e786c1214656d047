package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abtrack/internal/errors"
	"abtrack/internal/model"
	"abtrack/internal/output"
	"abtrack/internal/storage"
)

func initializedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, storage.New(dir).Init())
	return dir
}

func TestNewLoadsDocuments(t *testing.T) {
	dir := initializedDir(t)
	s := storage.New(dir)
	require.NoError(t, s.SaveEmployees([]*model.Employee{
		{EmployeeID: 1, Name: "Alice", Active: true, Absences: []model.Absence{}},
	}))

	ctx, err := New(Options{DataDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, ctx.Ledger.FindEmployee("Alice"))
}

func TestNewFailsFastOnMissingDocuments(t *testing.T) {
	_, err := New(Options{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, errors.ErrDocumentNotFound)
}

func TestNewSkipLoad(t *testing.T) {
	ctx, err := New(Options{DataDir: t.TempDir(), SkipLoad: true})
	require.NoError(t, err)
	assert.Empty(t, ctx.Ledger.Employees())
}

func TestNewEnvOverride(t *testing.T) {
	dir := initializedDir(t)
	t.Setenv("ABTRACK_DATA_DIR", dir)

	ctx, err := New(Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, dir, ctx.Store.Dir())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := initializedDir(t)

	ctx, err := New(Options{DataDir: dir})
	require.NoError(t, err)

	_, err = ctx.Ledger.AddEmployee("Alice", true)
	require.NoError(t, err)
	require.NoError(t, ctx.Ledger.AddCode("V", "Vacation"))
	require.NoError(t, ctx.Save())

	reloaded, err := New(Options{DataDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, reloaded.Ledger.FindEmployee("Alice"))
	assert.Len(t, reloaded.Ledger.Codes(), 1)
}

func TestIsJSON(t *testing.T) {
	ctx, err := New(Options{DataDir: t.TempDir(), Format: output.FormatJSON, SkipLoad: true})
	require.NoError(t, err)
	assert.True(t, ctx.IsJSON())

	ctx.Formatter.Format = output.FormatCLI
	assert.False(t, ctx.IsJSON())
}

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abtrack/internal/model"
)

func bufFormatter(format Format) (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Formatter{Writer: &buf, Format: format, ColorMode: ColorNever}, &buf
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := bufFormatter(FormatCLI)
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto on a non-terminal writer stays off
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestFormatterJSON(t *testing.T) {
	f, buf := bufFormatter(FormatJSON)

	require.NoError(t, f.JSON(map[string]string{"status": "ok"}))

	var out map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "ok", out["status"])
}

func TestCLIFormatterMessages(t *testing.T) {
	f, buf := bufFormatter(FormatCLI)
	c := NewCLIFormatter(f)

	c.Title("Employees")
	c.Success("saved")
	c.Warning("careful")
	c.Error("broken")

	out := buf.String()
	assert.Contains(t, out, "Employees")
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ broken")
}

func TestCLIFormatterPrintEntries(t *testing.T) {
	f, buf := bufFormatter(FormatCLI)
	c := NewCLIFormatter(f)

	c.PrintEntries("Alice", "2024-03-05", []model.Absence{
		{Date: "2024-03-05", Code: "V"},
		{Date: "2024-03-05", Code: "T", Minutes: 90, Comment: "dentist"},
	})

	out := buf.String()
	assert.Contains(t, out, "Alice on 2024-03-05")
	assert.Contains(t, out, "  V")
	assert.Contains(t, out, "T90")
	assert.Contains(t, out, `"dentist"`)
}

func TestCLIFormatterPrintEntriesEmpty(t *testing.T) {
	f, buf := bufFormatter(FormatCLI)
	c := NewCLIFormatter(f)

	c.PrintEntries("Alice", "2024-03-05", nil)
	assert.Contains(t, buf.String(), "no absences recorded")
}

func TestCLIFormatterPrintReconciled(t *testing.T) {
	f, buf := bufFormatter(FormatCLI)
	c := NewCLIFormatter(f)

	c.PrintReconciled("Alice", "2024-03-05", nil)
	assert.Contains(t, buf.String(), "Cleared absences for Alice on 2024-03-05")

	buf.Reset()
	c.PrintReconciled("Alice", "2024-03-05", []model.Absence{{Code: "V"}})
	assert.Contains(t, buf.String(), "Saved absences for Alice on 2024-03-05")
}

func TestNewEntriesResponse(t *testing.T) {
	resp := NewEntriesResponse("Alice", "2024-03-05", []model.Absence{
		{Date: "2024-03-05", Code: "T", Minutes: 120, Comment: "dentist"},
	})

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Alice", resp.Employee)
	assert.Equal(t, "T120", resp.Entries[0].Cell)

	// Entries must marshal as an array even when empty
	empty := NewEntriesResponse("Alice", "2024-03-05", nil)
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entries":[]`)
}

func TestNewEmployeesResponse(t *testing.T) {
	resp := NewEmployeesResponse([]*model.Employee{
		{EmployeeID: 1, Name: "Alice", Active: true, Absences: []model.Absence{{Date: "2024-03-05", Code: "V"}}},
		{EmployeeID: 2, Name: "Bob"},
	})

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Employees[0].AbsenceCount)
	assert.False(t, resp.Employees[1].Active)
}

func TestJSONFormatterPrintError(t *testing.T) {
	f, buf := bufFormatter(FormatJSON)
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintError("employee not found", "Use 'abtrack employee list'"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "employee not found", resp.Error)
	assert.NotEmpty(t, resp.Suggestion)
}

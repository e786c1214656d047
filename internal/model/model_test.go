package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Absence Tests
// =============================================================================

func TestAbsenceIsTimed(t *testing.T) {
	timed := &Absence{Code: "T"}
	assert.True(t, timed.IsTimed())

	prefixed := &Absence{Code: "TX"}
	assert.True(t, prefixed.IsTimed())

	fullDay := &Absence{Code: "V"}
	assert.False(t, fullDay.IsTimed())

	// Prefix matching is case-sensitive
	lower := &Absence{Code: "t"}
	assert.False(t, lower.IsTimed())
}

func TestAbsenceIsBlank(t *testing.T) {
	assert.True(t, (&Absence{}).IsBlank())
	assert.True(t, (&Absence{Code: "   "}).IsBlank())
	assert.False(t, (&Absence{Code: "V"}).IsBlank())
}

func TestAbsenceCellText(t *testing.T) {
	t.Run("full_day_code", func(t *testing.T) {
		a := &Absence{Code: "V"}
		assert.Equal(t, "V", a.CellText())
	})

	t.Run("timed_with_minutes", func(t *testing.T) {
		a := &Absence{Code: "T", Minutes: 120}
		assert.Equal(t, "T120", a.CellText())
	})

	t.Run("timed_without_minutes", func(t *testing.T) {
		a := &Absence{Code: "T"}
		assert.Equal(t, "T", a.CellText())
	})

	t.Run("minutes_on_full_day_code_ignored", func(t *testing.T) {
		a := &Absence{Code: "V", Minutes: 60}
		assert.Equal(t, "V", a.CellText())
	})
}

// =============================================================================
// Employee Tests
// =============================================================================

func testEmployee() *Employee {
	return &Employee{
		EmployeeID: 1,
		Name:       "Alice",
		Active:     true,
		Absences: []Absence{
			{Date: "2024-03-05", Code: "V"},
			{Date: "2024-03-05", Code: "T", Minutes: 90, Comment: "dentist"},
			{Date: "2024-03-06", Code: "S", Comment: "flu"},
		},
	}
}

func TestEmployeeEntriesOn(t *testing.T) {
	emp := testEmployee()

	entries := emp.EntriesOn("2024-03-05")
	assert.Len(t, entries, 2)
	assert.Equal(t, "V", entries[0].Code)
	assert.Equal(t, "T", entries[1].Code)

	assert.Empty(t, emp.EntriesOn("2024-03-07"))
}

func TestEmployeeCountOn(t *testing.T) {
	emp := testEmployee()

	assert.Equal(t, 1, emp.CountOn("V", "2024-03-05"))
	assert.Equal(t, 0, emp.CountOn("V", "2024-03-06"))
	assert.Equal(t, 0, emp.CountOn("X", "2024-03-05"))

	// Duplicate codes on one date each count
	emp.Absences = append(emp.Absences, Absence{Date: "2024-03-05", Code: "V"})
	assert.Equal(t, 2, emp.CountOn("V", "2024-03-05"))
}

func TestEmployeeCellText(t *testing.T) {
	emp := testEmployee()

	assert.Equal(t, "V|T90", emp.CellText("2024-03-05"))
	assert.Equal(t, "S", emp.CellText("2024-03-06"))
	assert.Equal(t, "", emp.CellText("2024-03-07"))
}

func TestEmployeeCommentsOn(t *testing.T) {
	emp := testEmployee()

	assert.Equal(t, "dentist", emp.CommentsOn("2024-03-05"))
	assert.Equal(t, "flu", emp.CommentsOn("2024-03-06"))
	assert.Equal(t, "", emp.CommentsOn("2024-03-07"))

	emp.Absences = append(emp.Absences, Absence{Date: "2024-03-06", Code: "T", Comment: "late"})
	assert.Equal(t, "flu; late", emp.CommentsOn("2024-03-06"))
}

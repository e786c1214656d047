package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"abtrack/internal/errors"
	"abtrack/internal/model"
)

func TestEmployeeName(t *testing.T) {
	assert.NoError(t, EmployeeName("Alice"))
	assert.ErrorIs(t, EmployeeName(""), errors.ErrBlankEmployeeName)
	assert.ErrorIs(t, EmployeeName("   "), errors.ErrBlankEmployeeName)

	assert.NoError(t, EmployeeName(strings.Repeat("a", MaxNameLength)))
	err := EmployeeName(strings.Repeat("a", MaxNameLength+1))
	assert.True(t, errors.IsUserError(err))
}

func TestCodePair(t *testing.T) {
	assert.NoError(t, CodePair("V", "Vacation"))
	assert.ErrorIs(t, CodePair("", "Vacation"), errors.ErrBlankCode)
	assert.ErrorIs(t, CodePair("V", " "), errors.ErrBlankCodeValue)

	err := CodePair(strings.Repeat("X", MaxCodeLength+1), "label")
	assert.True(t, errors.IsUserError(err))
}

func TestDateKey(t *testing.T) {
	assert.NoError(t, DateKey("2024-03-05"))

	for _, in := range []string{"2024-3-5", "03/05/2024", "2024-02-30", "garbage"} {
		err := DateKey(in)
		assert.True(t, errors.IsUserError(err), in)
	}
}

func TestEntry(t *testing.T) {
	t.Run("blank_is_legal", func(t *testing.T) {
		assert.NoError(t, Entry(model.Absence{}))
		// Blank entries skip all other checks
		assert.NoError(t, Entry(model.Absence{Minutes: -5}))
	})

	t.Run("valid_entries", func(t *testing.T) {
		assert.NoError(t, Entry(model.Absence{Code: "V"}))
		assert.NoError(t, Entry(model.Absence{Code: "T", Minutes: 120}))
		assert.NoError(t, Entry(model.Absence{Code: "T", Minutes: MaxMinutes}))
		assert.NoError(t, Entry(model.Absence{Code: "V", Comment: "out sick"}))
	})

	t.Run("minutes_out_of_range", func(t *testing.T) {
		assert.Error(t, Entry(model.Absence{Code: "T", Minutes: -1}))
		assert.Error(t, Entry(model.Absence{Code: "T", Minutes: MaxMinutes + 1}))
	})

	t.Run("minutes_require_timed_code", func(t *testing.T) {
		assert.Error(t, Entry(model.Absence{Code: "V", Minutes: 60}))
		assert.NoError(t, Entry(model.Absence{Code: "V", Minutes: 0}))
	})

	t.Run("date_key_checked_when_set", func(t *testing.T) {
		assert.NoError(t, Entry(model.Absence{Code: "V", Date: "2024-03-05"}))
		assert.Error(t, Entry(model.Absence{Code: "V", Date: "03/05/2024"}))
	})

	t.Run("comment_too_long", func(t *testing.T) {
		assert.Error(t, Entry(model.Absence{
			Code:    "V",
			Comment: strings.Repeat("x", MaxCommentLength+1),
		}))
	})
}

// Package validate provides input validation helpers for the abtrack CLI.
package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"abtrack/internal/dates"
	"abtrack/internal/errors"
	"abtrack/internal/model"
)

const (
	// MaxNameLength is the maximum length for an employee name.
	MaxNameLength = 128
	// MaxCodeLength is the maximum length for an absence code.
	MaxCodeLength = 16
	// MaxCommentLength is the maximum length for an absence comment.
	MaxCommentLength = 1024
	// MaxMinutes is the maximum minutes for a timed absence (one day).
	MaxMinutes = 1440
)

// EmployeeName validates an employee name.
func EmployeeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrBlankEmployeeName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Employee name too long",
			"Employee names must be 128 characters or fewer")
	}
	return nil
}

// CodePair validates an absence-code catalog entry.
func CodePair(code, value string) error {
	if strings.TrimSpace(code) == "" {
		return errors.ErrBlankCode
	}
	if strings.TrimSpace(value) == "" {
		return errors.ErrBlankCodeValue
	}
	if utf8.RuneCountInString(code) > MaxCodeLength {
		return errors.NewUserErrorWithField("code", code,
			"Absence code too long",
			"Codes must be 16 characters or fewer")
	}
	return nil
}

// DateKey validates a strict YYYY-MM-DD date key.
func DateKey(date string) error {
	if _, err := dates.ParseKey(date); err != nil {
		return errors.NewUserErrorWithField("date", date,
			"Invalid date",
			"Use the YYYY-MM-DD format, e.g. '2024-03-05'")
	}
	return nil
}

// Entry validates one absence entry before reconciliation. Blank entries are
// legal input (reconciliation drops them); minutes are meaningful only for
// timed codes.
func Entry(a model.Absence) error {
	if a.IsBlank() {
		return nil
	}
	if a.Date != "" {
		if err := DateKey(a.Date); err != nil {
			return err
		}
	}
	if a.Minutes < 0 || a.Minutes > MaxMinutes {
		return errors.NewUserErrorWithField("minutes", strconv.Itoa(a.Minutes),
			"Invalid minutes",
			"Minutes must be between 0 and 1440")
	}
	if a.Minutes > 0 && !a.IsTimed() {
		return errors.NewUserErrorWithField("minutes", strconv.Itoa(a.Minutes),
			"Minutes apply only to time-based codes",
			"Only codes starting with 'T' carry a minutes quantity")
	}
	if utf8.RuneCountInString(a.Comment) > MaxCommentLength {
		return errors.NewUserError(
			"Comment too long",
			"Comments must be 1024 characters or fewer")
	}
	return nil
}

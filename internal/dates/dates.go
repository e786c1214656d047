// Package dates provides calendar helpers for abtrack. Months are 1-based
// time.Month values everywhere inside the codebase; month names and natural
// phrases are accepted only at the CLI boundary through ParseMonth.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"abtrack/internal/errors"
)

// KeyLayout is the date key format used by absence entries.
const KeyLayout = "2006-01-02"

// DaysInMonth returns the number of calendar days in the given month,
// accounting for leap years via the Gregorian rule.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayLabels returns the zero-padded day labels ("01".."31") for a month,
// matching the table column headers and CSV grid headers.
func DayLabels(year int, month time.Month) []string {
	n := DaysInMonth(year, month)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("%02d", i+1)
	}
	return labels
}

// Key builds the YYYY-MM-DD date key for a day of the given month.
func Key(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// KeyFromLabel builds a date key from a zero-padded day label.
func KeyFromLabel(year int, month time.Month, label string) string {
	return fmt.Sprintf("%04d-%02d-%s", year, int(month), label)
}

// ParseKey parses a strict YYYY-MM-DD date key.
func ParseKey(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDate
	}
	return t, nil
}

// periodRegex matches month phrases like "this month", "last month".
var periodRegex = regexp.MustCompile(`(?i)^(this|current|last|previous)\s+month$`)

// ParseMonth parses a month given as an English month name ("March", "mar"),
// a 1-based number ("3"), or a relative phrase ("last month"). The returned
// year is non-zero only for relative phrases, which pin both fields.
func ParseMonth(s string) (time.Month, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := time.Now()
		return now.Month(), now.Year(), nil
	}

	if match := periodRegex.FindStringSubmatch(s); match != nil {
		now := time.Now()
		t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if m := strings.ToLower(match[1]); m == "last" || m == "previous" {
			t = t.AddDate(0, -1, 0)
		}
		return t.Month(), t.Year(), nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, 0, errors.ErrInvalidMonth
		}
		return time.Month(n), 0, nil
	}

	name := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, 0, nil
		}
	}

	return 0, 0, errors.ErrInvalidMonth
}

// ParseDate parses a date given as a strict YYYY-MM-DD key or, failing that,
// as a natural language expression ("yesterday", "march 5"). It always
// returns a normalized date key.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.ErrInvalidDate
	}

	if t, err := time.Parse(KeyLayout, s); err == nil {
		return t.Format(KeyLayout), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, s)
	if err != nil {
		return "", errors.ErrInvalidDate
	}
	return result.Time.Format(KeyLayout), nil
}

// ParseYear parses a four-digit year string.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Year(), nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 || y > 9999 {
		return 0, errors.ErrInvalidYear
	}
	return y, nil
}

// InMonth reports whether a date key falls within the given year and month.
// Malformed keys never match.
func InMonth(key string, year int, month time.Month) bool {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// InRange reports whether a date key falls within [start, end], inclusive on
// both ends. Malformed keys never match.
func InRange(key, start, end string) bool {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return false
	}
	s, err := time.Parse(KeyLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(KeyLayout, end)
	if err != nil {
		return false
	}
	return !t.Before(s) && !t.After(e)
}

// Year extracts the year from a date key, or 0 for malformed keys.
func Year(key string) int {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return 0
	}
	return t.Year()
}

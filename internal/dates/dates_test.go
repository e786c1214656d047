package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))

	// Leap year rules
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
}

func TestDayLabels(t *testing.T) {
	labels := DayLabels(2024, time.February)
	require.Len(t, labels, 29)
	assert.Equal(t, "01", labels[0])
	assert.Equal(t, "09", labels[8])
	assert.Equal(t, "29", labels[28])
}

func TestKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", Key(2024, time.March, 5))
	assert.Equal(t, "2024-12-31", Key(2024, time.December, 31))
}

func TestKeyFromLabel(t *testing.T) {
	assert.Equal(t, "2024-03-07", KeyFromLabel(2024, time.March, "07"))
}

func TestParseKey(t *testing.T) {
	got, err := ParseKey("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())

	_, err = ParseKey("03/05/2024")
	assert.Error(t, err)
	_, err = ParseKey("2024-02-30")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		m, y, err := ParseMonth("3")
		require.NoError(t, err)
		assert.Equal(t, time.March, m)
		assert.Zero(t, y)
	})

	t.Run("full_name", func(t *testing.T) {
		m, _, err := ParseMonth("March")
		require.NoError(t, err)
		assert.Equal(t, time.March, m)
	})

	t.Run("short_name", func(t *testing.T) {
		m, _, err := ParseMonth("dec")
		require.NoError(t, err)
		assert.Equal(t, time.December, m)
	})

	t.Run("empty_defaults_to_now", func(t *testing.T) {
		m, y, err := ParseMonth("")
		require.NoError(t, err)
		now := time.Now()
		assert.Equal(t, now.Month(), m)
		assert.Equal(t, now.Year(), y)
	})

	t.Run("this_month", func(t *testing.T) {
		m, y, err := ParseMonth("this month")
		require.NoError(t, err)
		now := time.Now()
		assert.Equal(t, now.Month(), m)
		assert.Equal(t, now.Year(), y)
	})

	t.Run("last_month", func(t *testing.T) {
		m, y, err := ParseMonth("last month")
		require.NoError(t, err)
		now := time.Now()
		want := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		assert.Equal(t, want.Month(), m)
		assert.Equal(t, want.Year(), y)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"0", "13", "-1", "nonsense"} {
			_, _, err := ParseMonth(in)
			assert.Error(t, err, in)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("strict_key", func(t *testing.T) {
		got, err := ParseDate("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", got)
	})

	t.Run("natural_language", func(t *testing.T) {
		got, err := ParseDate("yesterday")
		require.NoError(t, err)
		assert.Equal(t, time.Now().AddDate(0, 0, -1).Format(KeyLayout), got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDate("  ")
		assert.Error(t, err)
	})
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	y, err = ParseYear("")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), y)

	for _, in := range []string{"24", "abcd", "99999"} {
		_, err := ParseYear(in)
		assert.Error(t, err, in)
	}
}

func TestInMonth(t *testing.T) {
	assert.True(t, InMonth("2024-03-05", 2024, time.March))
	assert.False(t, InMonth("2024-04-05", 2024, time.March))
	assert.False(t, InMonth("2023-03-05", 2024, time.March))
	assert.False(t, InMonth("garbage", 2024, time.March))
}

func TestInRange(t *testing.T) {
	// Inclusive on both ends
	assert.True(t, InRange("2024-03-01", "2024-03-01", "2024-03-31"))
	assert.True(t, InRange("2024-03-31", "2024-03-01", "2024-03-31"))
	assert.True(t, InRange("2024-03-15", "2024-03-01", "2024-03-31"))
	assert.False(t, InRange("2024-04-01", "2024-03-01", "2024-03-31"))
	assert.False(t, InRange("2024-02-29", "2024-03-01", "2024-03-31"))
	assert.False(t, InRange("garbage", "2024-03-01", "2024-03-31"))
	assert.False(t, InRange("2024-03-15", "bad", "2024-03-31"))
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2024, Year("2024-03-05"))
	assert.Equal(t, 0, Year("garbage"))
}

// Package dates holds the day-granularity helpers shared by reconciliation and
// statistics.
//
// A day is represented as a time.Time at midnight UTC carrying the calendar date
// it was taken from. Keeping days in UTC makes day arithmetic exact (every day is
// 24h long) while the calendar date itself always comes from the caller's wall
// clock or from the timestamp's own offset.
package dates

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Layout is the canonical day key format (YYYY-MM-DD).
const Layout = "2006-01-02"

// ErrEmpty is returned when an empty string is parsed.
var ErrEmpty = errors.New("empty date")

// timestampLayouts are tried in order. RFC3339 covers the trailing "Z" designator.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	Layout,
}

// ParseDay parses a strict YYYY-MM-DD key.
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	d, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return d, nil
}

// ParseTimestamp parses an ISO-8601 style timestamp. A trailing "Z" is UTC;
// timestamps without an offset are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// DayOf returns the calendar day of t, as seen in t's own location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Key formats a day as YYYY-MM-DD.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// AddDays shifts a day by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(math.Round(DayOf(b).Sub(DayOf(a)).Hours() / 24))
}

// MondayIndex returns the weekday with Monday as 0 and Sunday as 6.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

package stats

import (
	"sort"
	"strings"
	"time"

	"reading-tracker/core/dates"
	"reading-tracker/core/reconcile"
)

// Stats are the aggregate figures shown on the page.
type Stats struct {
	TotalDays     int `json:"total_days"`
	ThisYearDays  int `json:"this_year_days"`
	ThisMonthDays int `json:"this_month_days"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// Compute derives Stats from the reading days as of now.
// Keys that are not valid days are ignored by the streak walk but still counted.
func Compute(days reconcile.ReadingDays, now time.Time) Stats {
	if len(days) == 0 {
		return Stats{}
	}

	yearPrefix := now.Format("2006")
	monthPrefix := now.Format("2006-01")

	s := Stats{TotalDays: len(days)}
	for key := range days {
		if strings.HasPrefix(key, yearPrefix) {
			s.ThisYearDays++
		}
		if strings.HasPrefix(key, monthPrefix) {
			s.ThisMonthDays++
		}
	}

	s.CurrentStreak, s.LongestStreak = streaks(days, now)
	return s
}

// streaks walks the days from most recent to oldest.
//
// The run anchored at the most recent day counts as the current streak only when
// that day is today or yesterday. The current streak stops growing at the first
// gap; later runs only feed the longest streak.
func streaks(days reconcile.ReadingDays, now time.Time) (current, longest int) {
	sorted := sortedDesc(days)
	if len(sorted) == 0 {
		return 0, 0
	}

	today := dates.DayOf(now)
	run := 1
	longest = 1
	tracking := dates.DaysBetween(sorted[0], today) <= 1
	if tracking {
		current = 1
	}

	for i := 1; i < len(sorted); i++ {
		if dates.DaysBetween(sorted[i], sorted[i-1]) == 1 {
			run++
			if tracking {
				current = run
			}
		} else {
			tracking = false
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return current, longest
}

func sortedDesc(days reconcile.ReadingDays) []time.Time {
	out := make([]time.Time, 0, len(days))
	for key := range days {
		d, err := dates.ParseDay(key)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

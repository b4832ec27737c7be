package stats

import (
	"time"

	"reading-tracker/core/dates"
	"reading-tracker/core/reconcile"
)

// DefaultWindowDays covers twelve 30-day months.
const DefaultWindowDays = 12 * 30

// Cell is one day of the heatmap.
type Cell struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Weekday    int    `json:"weekday"`
	HasReading bool   `json:"has_reading"`
	IsFuture   bool   `json:"is_future"`
}

// Week is a Monday-to-Sunday row of cells.
type Week []Cell

// MonthLabel marks the week index where a new month starts.
type MonthLabel struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Heatmap builds the weeks covering the trailing windowDays up to now.
// The first week starts on the Monday on or before now-windowDays and the last
// week contains now; days after today are flagged IsFuture.
func Heatmap(days reconcile.ReadingDays, windowDays int, now time.Time) []Week {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	today := dates.DayOf(now)
	start := dates.AddDays(today, -windowDays)
	start = dates.AddDays(start, -dates.MondayIndex(start))

	weeks := make([]Week, 0, windowDays/7+2)
	for weekStart := start; !weekStart.After(today); weekStart = dates.AddDays(weekStart, 7) {
		week := make(Week, 0, 7)
		for i := 0; i < 7; i++ {
			day := dates.AddDays(weekStart, i)
			key := dates.Key(day)
			week = append(week, Cell{
				Date:       key,
				Day:        day.Day(),
				Month:      int(day.Month()),
				Year:       day.Year(),
				Weekday:    i,
				HasReading: days.Has(key),
				IsFuture:   day.After(today),
			})
		}
		weeks = append(weeks, week)
	}

	return weeks
}

// MonthLabels returns a label for every week whose first day falls in a
// different month than the previous labelled week.
func MonthLabels(weeks []Week) []MonthLabel {
	var labels []MonthLabel
	current := 0

	for i, week := range weeks {
		if len(week) == 0 {
			continue
		}
		month := week[0].Month
		if month != current {
			current = month
			labels = append(labels, MonthLabel{Index: i, Name: time.Month(month).String()[:3]})
		}
	}

	return labels
}

// ReadingCells counts the cells marked as read.
func ReadingCells(weeks []Week) int {
	n := 0
	for _, week := range weeks {
		for _, c := range week {
			if c.HasReading {
				n++
			}
		}
	}
	return n
}

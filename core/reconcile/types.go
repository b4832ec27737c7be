package reconcile

import (
	"fmt"
	"sort"

	"reading-tracker/core/utils"
)

// Marker is the value stored for every read day. Only presence is meaningful.
const Marker = 1

// ReadingDays is the canonical mapping from YYYY-MM-DD to the read marker.
type ReadingDays map[string]int

// Mark records key as read.
func (d ReadingDays) Mark(key string) {
	d[key] = Marker
}

// Has reports whether key is marked read.
func (d ReadingDays) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Keys returns the day keys sorted ascending.
func (d ReadingDays) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Payload is the raw activity document as decoded from upstream JSON.
// Every field is optional and may carry an unexpected type.
type Payload map[string]any

// Payload field names.
const (
	FieldDaysRead           = "days_read"
	FieldCurrentDailyStreak = "current_daily_streak"
	FieldGoalInfo           = "goal_info"
	FieldTitlesRead         = "titles_read"
	FieldStart              = "start"
	FieldDuration           = "duration"
	FieldDateRead           = "date_read"
)

// DaysRead returns the days_read list, or nil when absent or not a list.
func (p Payload) DaysRead() []any {
	return utils.ToSlice(p[FieldDaysRead])
}

// CurrentDailyStreak returns the current_daily_streak object, or nil.
func (p Payload) CurrentDailyStreak() map[string]any {
	return utils.ToMap(p[FieldCurrentDailyStreak])
}

// TitlesRead returns goal_info.titles_read, or nil.
func (p Payload) TitlesRead() []any {
	goal := utils.ToMap(p[FieldGoalInfo])
	if goal == nil {
		return nil
	}
	return utils.ToSlice(goal[FieldTitlesRead])
}

// WarningKind classifies a non-fatal reconciliation problem.
type WarningKind string

const (
	// ParseWarning marks a single entry that could not be parsed and was skipped.
	ParseWarning WarningKind = "parse"
	// EmptyResultWarning marks a run where no strategy produced any day.
	EmptyResultWarning WarningKind = "empty_result"
)

// Warning describes a skipped entry or an empty result.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Source string      `json:"source"`
	Value  string      `json:"value,omitempty"`
	Err    error       `json:"-"`
}

func (w Warning) Error() string {
	if w.Err != nil {
		return fmt.Sprintf("%s warning in %s: %v", w.Kind, w.Source, w.Err)
	}
	return fmt.Sprintf("%s warning in %s", w.Kind, w.Source)
}

// Report summarizes a reconciliation run.
type Report struct {
	// Source names the strategy whose result was used. Empty when none produced days.
	Source string `json:"source"`
	// Days is the number of reconciled days.
	Days int `json:"days"`
	// Warnings lists every skipped entry plus the empty-result warning, if any.
	Warnings []Warning `json:"warnings"`
}

func (r *Report) warn(kind WarningKind, source, value string, err error) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Source: source, Value: value, Err: err})
}

// Empty reports whether the run produced no days.
func (r *Report) Empty() bool {
	return r.Days == 0
}

// CountKind returns how many warnings of the given kind were recorded.
func (r *Report) CountKind(kind WarningKind) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

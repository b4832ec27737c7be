package record

import (
	"time"

	"reading-tracker/core/reconcile"
)

// TimestampLayout is the format of LastUpdated.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is the persisted reading record.
type Record struct {
	ReadingDays reconcile.ReadingDays `json:"reading_days"`
	TotalDays   int                   `json:"total_days"`
	LastUpdated string                `json:"last_updated"`
}

// New builds a record from freshly reconciled days.
func New(days reconcile.ReadingDays, updated time.Time) *Record {
	if days == nil {
		days = reconcile.ReadingDays{}
	}
	return &Record{
		ReadingDays: days,
		TotalDays:   len(days),
		LastUpdated: updated.Format(TimestampLayout),
	}
}

// Empty returns the default record used when nothing was saved yet.
func Empty() *Record {
	return &Record{ReadingDays: reconcile.ReadingDays{}}
}

// LastUpdatedDate returns only the date part of LastUpdated for display.
// Values that are not timestamps are returned up to the first space.
func (r *Record) LastUpdatedDate() string {
	raw := r.LastUpdated
	if raw == "" {
		return ""
	}
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	for i, ch := range raw {
		if ch == ' ' {
			return raw[:i]
		}
	}
	return raw
}

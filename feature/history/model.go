package history

import "time"

// ReadingDay is one mirrored read day.
type ReadingDay struct {
	Date     string    `gorm:"primaryKey;column:date;size:10"`
	SyncedAt time.Time `gorm:"column:synced_at"`
}

// TableName overrides the table name used by ReadingDay.
func (ReadingDay) TableName() string {
	return "reading_days"
}

package reconcile

import (
	"fmt"

	"reading-tracker/core/dates"
	"reading-tracker/core/utils"
)

// MaxStreakDays bounds how many days a declared streak may expand to.
const MaxStreakDays = 100 * 366

// Extractor turns one representation of the payload into reading days.
// Entries it cannot use are recorded on the report and skipped.
type Extractor func(p Payload, r *Report) ReadingDays

// Strategy is a named extractor.
type Strategy struct {
	Name    string
	Extract Extractor
}

// DefaultStrategies is the priority order used by New: the explicit day list,
// then the declared daily streak, then title completion dates.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: FieldDaysRead, Extract: FromDaysRead},
		{Name: FieldCurrentDailyStreak, Extract: FromDailyStreak},
		{Name: FieldTitlesRead, Extract: FromTitlesRead},
	}
}

// FromDaysRead keeps every days_read entry that is a valid YYYY-MM-DD string.
func FromDaysRead(p Payload, r *Report) ReadingDays {
	days := ReadingDays{}
	for _, raw := range p.DaysRead() {
		s, ok := raw.(string)
		if !ok {
			value, _ := utils.ToString(raw)
			r.warn(ParseWarning, FieldDaysRead, value, fmt.Errorf("entry is %T, not a date string", raw))
			continue
		}
		if s == "" {
			continue
		}
		if _, err := dates.ParseDay(s); err != nil {
			r.warn(ParseWarning, FieldDaysRead, s, err)
			continue
		}
		days.Mark(s)
	}
	return days
}

// FromDailyStreak expands current_daily_streak into duration consecutive days
// starting at the calendar date of start.
func FromDailyStreak(p Payload, r *Report) ReadingDays {
	days := ReadingDays{}
	streak := p.CurrentDailyStreak()
	if streak == nil {
		return days
	}

	duration, ok := utils.ToInt(streak[FieldDuration])
	if !ok {
		if v, present := streak[FieldDuration]; present && v != nil {
			value, _ := utils.ToString(v)
			r.warn(ParseWarning, FieldCurrentDailyStreak, value, fmt.Errorf("duration is not a number"))
		}
		return days
	}
	if duration <= 0 {
		return days
	}
	if duration > MaxStreakDays {
		r.warn(ParseWarning, FieldCurrentDailyStreak, fmt.Sprint(duration), fmt.Errorf("duration exceeds %d days", MaxStreakDays))
		return days
	}

	startRaw, _ := utils.ToString(streak[FieldStart])
	if startRaw == "" {
		return days
	}
	start, err := dates.ParseTimestamp(startRaw)
	if err != nil {
		r.warn(ParseWarning, FieldCurrentDailyStreak, startRaw, err)
		return days
	}

	first := dates.DayOf(start)
	for i := 0; i < duration; i++ {
		days.Mark(dates.Key(dates.AddDays(first, i)))
	}
	return days
}

// FromTitlesRead marks the completion day of every title with a parseable date_read.
func FromTitlesRead(p Payload, r *Report) ReadingDays {
	days := ReadingDays{}
	for _, raw := range p.TitlesRead() {
		title := utils.ToMap(raw)
		if title == nil {
			continue
		}
		dateRead, _ := utils.ToString(title[FieldDateRead])
		if dateRead == "" {
			continue
		}
		ts, err := dates.ParseTimestamp(dateRead)
		if err != nil {
			r.warn(ParseWarning, FieldTitlesRead, dateRead, err)
			continue
		}
		days.Mark(dates.Key(dates.DayOf(ts)))
	}
	return days
}

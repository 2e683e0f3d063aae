package calendar

import (
	"iter"
	"slices"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/constants"
)

// DayCell holds the derived rendering attributes of one calendar day
type DayCell struct {
	Date          time.Time
	IsToday       bool
	IsStartOfWeek bool
	IsEndOfWeek   bool
	// WeekdayOverride is nil when no weekday color applies.
	WeekdayOverride *ColorPair
}

// Weekday returns the weekday number of the cell, 0 (Sunday) to 6
func (c DayCell) Weekday() int {
	return int(c.Date.Weekday())
}

// Classify yields one cell per day from r.Start to r.End, ascending.
// The sequence can be ranged over any number of times.
func Classify(r DisplayRange, today time.Time, cfg WidgetConfig) iter.Seq[DayCell] {
	todayShown := r.Contains(today)
	return func(yield func(DayCell) bool) {
		for i := 0; ; i++ {
			date := r.Start.AddDate(0, 0, i)
			if date.After(r.End) {
				return
			}
			if !yield(classifyDay(date, today, todayShown, cfg)) {
				return
			}
		}
	}
}

// Cells collects Classify into a slice
func Cells(r DisplayRange, today time.Time, cfg WidgetConfig) []DayCell {
	return slices.Collect(Classify(r, today, cfg))
}

func classifyDay(date, today time.Time, todayShown bool, cfg WidgetConfig) DayCell {
	weekday := int(date.Weekday())
	cell := DayCell{
		Date:          date,
		IsToday:       todayShown && SameDay(date, today),
		IsStartOfWeek: weekday == cfg.StartWeekday,
		IsEndOfWeek:   (weekday+1)%constants.DaysPerWeek == cfg.StartWeekday,
	}
	if pair, ok := cfg.WeekdayOverride(weekday); ok {
		cell.WeekdayOverride = &pair
	}
	return cell
}

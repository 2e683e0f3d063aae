package calendar

import (
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/constants"
)

// DisplayRange is the inclusive span of days shown by the card.
// Both ends are at midnight in the location of the reference date.
type DisplayRange struct {
	Start time.Time
	End   time.Time
}

// ComputeRange returns whole weeks anchored at cfg.StartWeekday: the
// ShowLastWeeks weeks before the week containing today, that week, and the
// ShowFollowWeeks weeks after it.
func ComputeRange(today time.Time, cfg WidgetConfig) DisplayRange {
	day := truncateDay(today)

	daysSinceStart := (int(day.Weekday()) - cfg.StartWeekday + constants.DaysPerWeek) % constants.DaysPerWeek
	start := day.AddDate(0, 0, -(daysSinceStart + constants.DaysPerWeek*cfg.ShowLastWeeks))

	weeks := cfg.ShowLastWeeks + cfg.ShowFollowWeeks + 1
	end := start.AddDate(0, 0, constants.DaysPerWeek*weeks-1)

	return DisplayRange{Start: start, End: end}
}

// Days returns the number of calendar days in the range, both ends included
func (r DisplayRange) Days() int {
	n := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Weeks returns the number of displayed weeks
func (r DisplayRange) Weeks() int {
	return r.Days() / constants.DaysPerWeek
}

// Contains reports whether t falls on a day within the range
func (r DisplayRange) Contains(t time.Time) bool {
	d := truncateDay(t.In(r.Start.Location()))
	return !d.Before(r.Start) && !d.After(r.End)
}

// truncateDay returns midnight of t's calendar day in t's location
func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay compares two instants at calendar-day granularity in a's location
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Package constants provides shared constants for the weekly calendar card
package constants

import "time"

// IsValidWeekday checks that day is a weekday number, 0 (Sunday) to 6 (Saturday)
func IsValidWeekday(day int) bool {
	return day >= int(time.Sunday) && day <= int(time.Saturday)
}

// WeekdayShortName returns the three-letter English name of a weekday number.
// Values outside [0,6] are wrapped.
func WeekdayShortName(day int) string {
	return time.Weekday(((day % DaysPerWeek) + DaysPerWeek) % DaysPerWeek).String()[:3]
}

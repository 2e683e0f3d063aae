package viewhelpers

import (
	"fmt"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/belphemur/weekly-calendar-card/internal/constants"
)

// StructureWeeks organizes classified days into rows for the template.
// A row is closed at every end-of-week cell and after the last cell.
func StructureWeeks(cells []calendar.DayCell) [][]calendar.DayCell {
	var weeks [][]calendar.DayCell
	var currentWeek []calendar.DayCell

	for i, cell := range cells {
		currentWeek = append(currentWeek, cell)

		if cell.IsEndOfWeek || i == len(cells)-1 {
			weeks = append(weeks, currentWeek)
			currentWeek = nil
		}
	}

	return weeks
}

// WeekdayHeaders returns the column labels of a week starting on startWeekday
func WeekdayHeaders(startWeekday int) []string {
	headers := make([]string, constants.DaysPerWeek)
	for i := range headers {
		headers[i] = constants.WeekdayShortName(startWeekday + i)
	}
	return headers
}

// DayClasses returns the CSS classes of a day cell
func DayClasses(cell calendar.DayCell) []string {
	classes := []string{calendar.ClassDay, calendar.WeekdayClass(cell.Weekday())}
	if cell.IsToday {
		classes = append(classes, calendar.ClassToday)
	}
	return classes
}

// RangeTitle formats the displayed range, e.g. "Jan 7 - Jan 13, 2024"
func RangeTitle(r calendar.DisplayRange) string {
	if r.Start.Year() == r.End.Year() {
		return fmt.Sprintf("%s - %s", r.Start.Format("Jan 2"), r.End.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", r.Start.Format("Jan 2, 2006"), r.End.Format("Jan 2, 2006"))
}

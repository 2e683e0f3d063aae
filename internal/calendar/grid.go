package calendar

import "time"

// Grid is everything a renderer needs to draw one card
type Grid struct {
	Range        DisplayRange
	Cells        []DayCell
	Styles       []StyleRule
	TodayColor   ColorPair
	StartWeekday int
}

// BuildGrid computes the range, the classified days and the styles for now.
// It is a pure function of its arguments.
func BuildGrid(now time.Time, cfg WidgetConfig) Grid {
	r := ComputeRange(now, cfg)
	return Grid{
		Range:        r,
		Cells:        Cells(r, now, cfg),
		Styles:       ResolveStyles(cfg),
		TodayColor:   cfg.TodayColor,
		StartWeekday: cfg.StartWeekday,
	}
}

package viewhelpers

import (
	"testing"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create time.Time from YYYY-MM-DD string
func date(t *testing.T, dateStr string) time.Time {
	t.Helper()
	tm, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date '%s': %v", dateStr, err)
	}
	return tm
}

func resolved(t *testing.T, raw calendar.RawConfig) calendar.WidgetConfig {
	t.Helper()
	cfg, err := calendar.Resolve(raw)
	require.NoError(t, err)
	return cfg
}

func TestStructureWeeks(t *testing.T) {
	today := date(t, "2024-01-10")
	cfg := resolved(t, calendar.RawConfig{Entity: "sensor.calendar", StartWeekday: 1})
	grid := calendar.BuildGrid(today, cfg)

	weeks := StructureWeeks(grid.Cells)
	require.Len(t, weeks, 4)

	for i, week := range weeks {
		require.Len(t, week, 7, "week %d should have 7 days", i)
		assert.True(t, week[0].IsStartOfWeek)
		assert.Equal(t, time.Monday, week[0].Date.Weekday())
		assert.True(t, week[6].IsEndOfWeek)
		assert.Equal(t, time.Sunday, week[6].Date.Weekday())
	}

	// Week 1 (Jan 1 - Jan 7), week 2 holds today.
	assert.Equal(t, 1, weeks[0][0].Date.Day())
	assert.True(t, weeks[1][2].IsToday)
	assert.Equal(t, 10, weeks[1][2].Date.Day())
	assert.Equal(t, 28, weeks[3][6].Date.Day())
}

func TestStructureWeeks_Empty(t *testing.T) {
	assert.Empty(t, StructureWeeks(nil))
}

func TestStructureWeeks_PartialTrailingRow(t *testing.T) {
	today := date(t, "2024-01-10")
	cfg := resolved(t, calendar.RawConfig{Entity: "sensor.calendar"})
	cells := calendar.BuildGrid(today, cfg).Cells

	weeks := StructureWeeks(cells[:10])
	require.Len(t, weeks, 2)
	assert.Len(t, weeks[0], 7)
	assert.Len(t, weeks[1], 3)
}

func TestWeekdayHeaders(t *testing.T) {
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, WeekdayHeaders(0))
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, WeekdayHeaders(1))
	assert.Equal(t, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}, WeekdayHeaders(6))
}

func TestDayClasses(t *testing.T) {
	cell := calendar.DayCell{Date: date(t, "2024-01-13")}
	assert.Equal(t, []string{"day", "weekday6"}, DayClasses(cell))

	cell.IsToday = true
	assert.Equal(t, []string{"day", "weekday6", "today"}, DayClasses(cell))
}

func TestRangeTitle(t *testing.T) {
	assert.Equal(t, "Jan 7 - Jan 13, 2024", RangeTitle(calendar.DisplayRange{
		Start: date(t, "2024-01-07"),
		End:   date(t, "2024-01-13"),
	}))
	assert.Equal(t, "Dec 31, 2023 - Jan 13, 2024", RangeTitle(calendar.DisplayRange{
		Start: date(t, "2023-12-31"),
		End:   date(t, "2024-01-13"),
	}))
}

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/belphemur/weekly-calendar-card/internal/card"
	"github.com/belphemur/weekly-calendar-card/internal/viewhelpers"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 4

var (
	warningBackground = lipgloss.Color("#fce588")
	warningForeground = lipgloss.Color("#000000")
)

// TerminalRenderer renders views as colored text blocks
type TerminalRenderer struct{}

// NewTerminalRenderer creates a TerminalRenderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// Render implements Renderer. The color profile is detected from w, so
// writers that are not terminals receive plain text.
func (r *TerminalRenderer) Render(w io.Writer, v card.View) error {
	if v.Empty {
		return nil
	}

	lr := lipgloss.NewRenderer(w)
	body := ""
	if v.Unavailable || v.Grid == nil {
		body = lr.NewStyle().
			Background(warningBackground).
			Foreground(warningForeground).
			Padding(0, 1).
			Render(v.Warning())
	} else {
		body = gridBlock(lr, *v.Grid)
	}

	box := lr.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, box.Render(body))
	return err
}

func gridBlock(lr *lipgloss.Renderer, grid calendar.Grid) string {
	title := lr.NewStyle().Bold(true).Render(viewhelpers.RangeTitle(grid.Range))

	headerStyle := lr.NewStyle().Width(cellWidth).Align(lipgloss.Right).Bold(true)
	headers := viewhelpers.WeekdayHeaders(grid.StartWeekday)
	headerCells := make([]string, 0, len(headers))
	for _, h := range headers {
		headerCells = append(headerCells, headerStyle.Render(h))
	}

	lines := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)}
	for _, week := range viewhelpers.StructureWeeks(grid.Cells) {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, cellStyle(lr, cell, grid.TodayColor).Render(strconv.Itoa(cell.Date.Day())))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// cellStyle colors a day the way the stylesheet would: today colors first,
// then the weekday override.
func cellStyle(lr *lipgloss.Renderer, cell calendar.DayCell, today calendar.ColorPair) lipgloss.Style {
	style := lr.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	switch {
	case cell.IsToday:
		style = style.
			Background(lipgloss.Color(today.Background)).
			Foreground(lipgloss.Color(today.Text)).
			Bold(true)
	case cell.WeekdayOverride != nil:
		style = style.
			Background(lipgloss.Color(cell.WeekdayOverride.Background)).
			Foreground(lipgloss.Color(cell.WeekdayOverride.Text))
	}
	return style
}

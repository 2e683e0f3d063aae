package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/belphemur/weekly-calendar-card/internal/card"
	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/belphemur/weekly-calendar-card/internal/viewhelpers"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

type htmlDay struct {
	Class string
	Day   int
}

type htmlCard struct {
	Style   template.CSS
	Warning string
	Title   string
	Headers []string
	Weeks   [][]htmlDay
}

// HTMLRenderer renders views as HTML fragments
type HTMLRenderer struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewHTMLRenderer parses the embedded card template
func NewHTMLRenderer() (*HTMLRenderer, error) {
	logger := logging.GetLogger("html-renderer")
	tmpl, err := template.New("").ParseFS(templateFS, "templates/card.html")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, logger: logger}, nil
}

// Render implements Renderer
func (r *HTMLRenderer) Render(w io.Writer, v card.View) error {
	if v.Empty {
		return nil
	}

	data := htmlCard{Warning: v.Warning()}
	if v.Grid != nil && !v.Unavailable {
		data.Title = viewhelpers.RangeTitle(v.Grid.Range)
		data.Headers = viewhelpers.WeekdayHeaders(v.Grid.StartWeekday)
		for _, week := range viewhelpers.StructureWeeks(v.Grid.Cells) {
			row := make([]htmlDay, 0, len(week))
			for _, cell := range week {
				row = append(row, htmlDay{
					Class: strings.Join(viewhelpers.DayClasses(cell), " "),
					Day:   cell.Date.Day(),
				})
			}
			data.Weeks = append(data.Weeks, row)
		}

		css, dropped := Stylesheet(v.Grid.Styles)
		for _, rule := range dropped {
			r.logger.Warn().
				Str("entity", v.Entity).
				Str("selector", rule.Selector).
				Str("property", rule.Property).
				Str("value", rule.Value).
				Msg("Dropped unsafe style value")
		}
		data.Style = template.CSS(css)
	} else {
		css, _ := Stylesheet(calendar.BaseStyles())
		data.Style = template.CSS(css)
	}

	if err := r.tmpl.ExecuteTemplate(w, "card", data); err != nil {
		r.logger.Error().Err(err).Str("entity", v.Entity).Msg("Failed to execute template")
		return fmt.Errorf("failed to render card: %w", err)
	}
	return nil
}

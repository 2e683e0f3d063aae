// Package render draws card views as HTML or terminal text.
package render

import (
	"fmt"
	"io"

	"github.com/belphemur/weekly-calendar-card/internal/card"
	"github.com/belphemur/weekly-calendar-card/internal/constants"
)

// Renderer writes a card view to w. Empty views produce no output.
type Renderer interface {
	Render(w io.Writer, v card.View) error
}

// New returns the renderer for format
func New(format constants.OutputFormat) (Renderer, error) {
	switch format {
	case constants.OutputHTML:
		return NewHTMLRenderer()
	case constants.OutputTerminal:
		return NewTerminalRenderer(), nil
	default:
		return nil, fmt.Errorf("no renderer for output format %q", format)
	}
}

// Package card implements the weekly calendar card and the contract the
// dashboard uses to drive cards.
package card

import (
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/belphemur/weekly-calendar-card/internal/entity"
)

// Card is a dashboard widget. The dashboard delivers calls to a card one at a time.
type Card interface {
	// SetConfig validates and applies a new raw configuration
	SetConfig(raw map[string]any) error
	// ShouldUpdate reports whether Render would produce a different view
	ShouldUpdate(states entity.Lookup) bool
	// Render builds the view for now
	Render(now time.Time, states entity.Lookup) View
	// CardSize is the layout weight of the card
	CardSize() int
}

// View is the output of a render pass
type View struct {
	// Empty is set when the card has no configuration yet
	Empty bool
	// Unavailable is set when the watched entity has no state
	Unavailable bool
	Entity      string
	Grid        *calendar.Grid
}

// Warning returns the text shown in place of the grid, or "" when there is none
func (v View) Warning() string {
	if !v.Unavailable {
		return ""
	}
	return "Entity not available: " + v.Entity
}

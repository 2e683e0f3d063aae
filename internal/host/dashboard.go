package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/card"
	"github.com/belphemur/weekly-calendar-card/internal/entity"
	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/belphemur/weekly-calendar-card/internal/signals"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Slot is a mounted card and its position in the dashboard configuration
type Slot struct {
	Index int
	Type  string
	Card  card.Card
}

// Sink receives every view a card renders
type Sink interface {
	Publish(ctx context.Context, slot Slot, view card.View) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, slot Slot, view card.View) error

// Publish implements Sink
func (f SinkFunc) Publish(ctx context.Context, slot Slot, view card.View) error {
	return f(ctx, slot, view)
}

// Option configures a Dashboard
type Option func(*Dashboard)

// WithClock sets the time source used as "now" for every render
func WithClock(clock func() time.Time) Option {
	return func(d *Dashboard) {
		d.clock = clock
	}
}

// Dashboard owns the mounted cards. Its methods are serialized, so each card
// sees one event at a time.
type Dashboard struct {
	mu        sync.Mutex
	registry  *Registry
	states    entity.Lookup
	sink      Sink
	clock     func() time.Time
	slots     []Slot
	published *atomic.Uint64
	logger    zerolog.Logger
}

// NewDashboard creates a dashboard without cards
func NewDashboard(registry *Registry, states entity.Lookup, sink Sink, opts ...Option) *Dashboard {
	d := &Dashboard{
		registry:  registry,
		states:    states,
		sink:      sink,
		clock:     time.Now,
		published: atomic.NewUint64(0),
		logger:    logging.GetLogger("dashboard"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Configure mounts one card per raw configuration, then refreshes. A card
// keeping its type at the same position is reconfigured in place. Cards that
// fail to configure are left out and their errors are returned together.
func (d *Dashboard) Configure(ctx context.Context, cards []map[string]any) error {
	var result *multierror.Error

	d.mu.Lock()
	previous := make(map[int]Slot, len(d.slots))
	for _, slot := range d.slots {
		previous[slot.Index] = slot
	}

	slots := make([]Slot, 0, len(cards))
	for i, raw := range cards {
		cardType, _ := raw["type"].(string)
		if cardType == "" {
			result = multierror.Append(result, fmt.Errorf("card %d: missing type", i))
			continue
		}

		var c card.Card
		if old, ok := previous[i]; ok && old.Type == cardType {
			c = old.Card
		} else {
			created, err := d.registry.New(cardType)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("card %d: %w", i, err))
				continue
			}
			c = created
		}

		if err := c.SetConfig(raw); err != nil {
			d.logger.Error().Err(err).Int("card", i).Str("type", cardType).Msg("Card setup failed")
			result = multierror.Append(result, fmt.Errorf("card %d (%s): %w", i, cardType, err))
			continue
		}
		slots = append(slots, Slot{Index: i, Type: cardType, Card: c})
	}
	d.slots = slots
	d.mu.Unlock()

	failed := len(cards) - len(slots)
	d.logger.Info().Int("cards", len(slots)).Int("failed", failed).Msg("Dashboard configured")
	signals.EmitDashboardReconfigured(ctx, len(slots), failed)

	if _, err := d.Refresh(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Refresh renders every card whose inputs changed and publishes the views.
// It returns how many cards were rendered.
func (d *Dashboard) Refresh(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var result *multierror.Error
	now := d.clock()
	rendered := 0
	for _, slot := range d.slots {
		if !slot.Card.ShouldUpdate(d.states) {
			d.logger.Debug().Int("card", slot.Index).Msg("Card unchanged, skipping render")
			continue
		}

		view := slot.Card.Render(now, d.states)
		rendered++
		if err := d.sink.Publish(ctx, slot, view); err != nil {
			result = multierror.Append(result, fmt.Errorf("card %d: %w", slot.Index, err))
			continue
		}
		d.published.Inc()
	}
	return rendered, result.ErrorOrNil()
}

// Listen refreshes the dashboard on every entity state change until stop is called
func (d *Dashboard) Listen() (stop func()) {
	key := fmt.Sprintf("dashboard-%p", d)
	signals.OnEntityStateChanged(func(ctx context.Context, data signals.EntityStateChangedData) {
		rendered, err := d.Refresh(ctx)
		if err != nil {
			d.logger.Error().Err(err).Str("entity_id", data.EntityID).Msg("Refresh after state change failed")
			return
		}
		d.logger.Debug().Str("entity_id", data.EntityID).Int("rendered", rendered).Msg("Refreshed after state change")
	}, key)
	return func() {
		signals.OffEntityStateChanged(key)
	}
}

// Slots returns the mounted cards
func (d *Dashboard) Slots() []Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Slot, len(d.slots))
	copy(out, d.slots)
	return out
}

// LayoutSize is the total layout weight of the mounted cards
func (d *Dashboard) LayoutSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	size := 0
	for _, slot := range d.slots {
		size += slot.Card.CardSize()
	}
	return size
}

// Published returns how many views reached the sink
func (d *Dashboard) Published() uint64 {
	return d.published.Load()
}

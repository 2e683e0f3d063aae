package card

import (
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/belphemur/weekly-calendar-card/internal/constants"
	"github.com/belphemur/weekly-calendar-card/internal/entity"
	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// observation is what a render saw of the watched entity
type observation struct {
	available bool
	version   uint64
}

// WeeklyCalendar renders the weeks around today for one entity
type WeeklyCalendar struct {
	config        *atomic.Pointer[calendar.WidgetConfig]
	configChanged *atomic.Bool
	lastSeen      *atomic.Pointer[observation]
	emptyShown    *atomic.Bool
	renders       *atomic.Uint64
	logger        zerolog.Logger
}

// NewWeeklyCalendar creates an unconfigured card
func NewWeeklyCalendar() *WeeklyCalendar {
	return &WeeklyCalendar{
		config:        atomic.NewPointer[calendar.WidgetConfig](nil),
		configChanged: atomic.NewBool(false),
		lastSeen:      atomic.NewPointer[observation](nil),
		emptyShown:    atomic.NewBool(false),
		renders:       atomic.NewUint64(0),
		logger:        logging.GetLogger("weekly-calendar"),
	}
}

// New returns a WeeklyCalendar as a Card, for use as a registry factory
func New() Card {
	return NewWeeklyCalendar()
}

// SetConfig decodes, validates and stores raw. On error the previous
// configuration stays in place.
func (c *WeeklyCalendar) SetConfig(raw map[string]any) error {
	decoded, err := DecodeRawConfig(raw)
	if err != nil {
		return err
	}

	cfg, err := calendar.Resolve(decoded)
	if err != nil {
		c.logger.Error().Err(err).Msg("Invalid card configuration")
		return err
	}

	c.logger.Debug().
		Str("entity", cfg.Entity).
		Int("show_last_weeks", cfg.ShowLastWeeks).
		Int("show_follow_weeks", cfg.ShowFollowWeeks).
		Int("start_weekday", cfg.StartWeekday).
		Str("today_background_color", cfg.TodayColor.Background).
		Str("today_text_color", cfg.TodayColor.Text).
		Interface("weekday_background_color", cfg.WeekdayColors).
		Msg("Card configuration resolved")

	snapshot := cfg.Clone()
	c.config.Store(&snapshot)
	c.configChanged.Store(true)
	return nil
}

// Config returns a copy of the current configuration
func (c *WeeklyCalendar) Config() (calendar.WidgetConfig, bool) {
	cfg := c.config.Load()
	if cfg == nil {
		return calendar.WidgetConfig{}, false
	}
	return cfg.Clone(), true
}

// ShouldUpdate is true after a reconfiguration, before the first render, and
// whenever the watched entity appeared, disappeared or got a new state.
// Without a configuration or a state lookup only the first empty view is
// worth rendering.
func (c *WeeklyCalendar) ShouldUpdate(states entity.Lookup) bool {
	if c.configChanged.Load() {
		return true
	}

	cfg := c.config.Load()
	if cfg == nil || states == nil {
		return !c.emptyShown.Load()
	}

	last := c.lastSeen.Load()
	if last == nil {
		return true
	}

	return observe(states, cfg.Entity) != *last
}

// Render builds the view. It returns an Empty view until both a configuration
// and a state lookup are available.
func (c *WeeklyCalendar) Render(now time.Time, states entity.Lookup) View {
	cfg := c.config.Load()
	if cfg == nil || states == nil {
		c.emptyShown.Store(true)
		if cfg != nil {
			c.configChanged.Store(false)
		}
		return View{Empty: true}
	}

	obs := observe(states, cfg.Entity)
	c.lastSeen.Store(&obs)
	c.configChanged.Store(false)
	c.emptyShown.Store(false)
	renders := c.renders.Inc()

	if !obs.available {
		c.logger.Warn().Str("entity", cfg.Entity).Msg("Entity not available, rendering warning")
		return View{Unavailable: true, Entity: cfg.Entity}
	}

	grid := calendar.BuildGrid(now, *cfg)
	c.logger.Debug().
		Str("entity", cfg.Entity).
		Time("start_day", grid.Range.Start).
		Time("end_day", grid.Range.End).
		Int("days", len(grid.Cells)).
		Uint64("render", renders).
		Msg("Rendered weekly calendar")
	return View{Entity: cfg.Entity, Grid: &grid}
}

// CardSize implements Card
func (c *WeeklyCalendar) CardSize() int {
	return constants.CardSize
}

func observe(states entity.Lookup, entityID string) observation {
	st, ok := states.State(entityID)
	if !ok {
		return observation{}
	}
	return observation{available: true, version: st.Version}
}

// Package calendar computes the days, week boundaries and colors of a
// weekly calendar card from a reference date and the card configuration.
package calendar

import (
	"errors"
	"fmt"
	"slices"

	"github.com/belphemur/weekly-calendar-card/internal/constants"
)

// Defaults applied by Resolve when a field is absent or zero.
const (
	DefaultShowLastWeeks   = 1
	DefaultShowFollowWeeks = 2
	DefaultStartWeekday    = 0
	DefaultTodayBackground = "#ff0000"
	DefaultTodayText       = "#000000"
)

var (
	// ErrMissingEntity is returned when the configuration names no entity
	ErrMissingEntity = errors.New("there is no entity parameter defined")
	// ErrNegativeWeeks is returned for a negative week count
	ErrNegativeWeeks = errors.New("week count must not be negative")
	// ErrInvalidWeekday is returned for a weekday outside [0,6]
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)

// ConfigError reports which configuration field failed to resolve
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// RawWeekdayColor is one unresolved weekday_background_color entry
type RawWeekdayColor struct {
	Weekday         int    `mapstructure:"weekday"`
	BackgroundColor string `mapstructure:"background_color"`
	TextColor       string `mapstructure:"text_color"`
}

// RawConfig is the card configuration as supplied by the host
type RawConfig struct {
	Type                 string            `mapstructure:"type"`
	Entity               string            `mapstructure:"entity"`
	ShowLastWeeks        int               `mapstructure:"show_last_weeks"`
	ShowFollowWeeks      int               `mapstructure:"show_follow_weeks"`
	StartWeekday         int               `mapstructure:"start_weekday"`
	TodayBackgroundColor string            `mapstructure:"today_background_color"`
	TodayTextColor       string            `mapstructure:"today_text_color"`
	WeekdayColors        []RawWeekdayColor `mapstructure:"weekday_background_color"`
}

// ColorPair is a background and text color. Values are not validated.
type ColorPair struct {
	Background string
	Text       string
}

// WeekdayColor overrides the colors of every day falling on Weekday
type WeekdayColor struct {
	Weekday int
	ColorPair
}

// WidgetConfig is the resolved configuration. Treat it as immutable.
type WidgetConfig struct {
	Entity          string
	ShowLastWeeks   int
	ShowFollowWeeks int
	StartWeekday    int
	TodayColor      ColorPair
	// WeekdayColors keeps configuration order; later entries win.
	WeekdayColors []WeekdayColor
}

// DefaultWeekdayColors returns the Sunday and Saturday overrides used when
// none are configured.
func DefaultWeekdayColors() []WeekdayColor {
	return []WeekdayColor{
		{Weekday: 0, ColorPair: ColorPair{Background: "#ff0000", Text: "#000000"}},
		{Weekday: 6, ColorPair: ColorPair{Background: "#0000ff", Text: "#000000"}},
	}
}

// Resolve validates raw and fills in defaults.
//
// A zero value counts as absent: show_last_weeks = 0 becomes 1 and
// show_follow_weeks = 0 becomes 2. An empty but non-nil weekday color list is
// kept as is and disables the default overrides.
func Resolve(raw RawConfig) (WidgetConfig, error) {
	if raw.Entity == "" {
		return WidgetConfig{}, &ConfigError{Field: "entity", Err: ErrMissingEntity}
	}

	cfg := WidgetConfig{
		Entity:          raw.Entity,
		ShowLastWeeks:   orDefault(raw.ShowLastWeeks, DefaultShowLastWeeks),
		ShowFollowWeeks: orDefault(raw.ShowFollowWeeks, DefaultShowFollowWeeks),
		StartWeekday:    orDefault(raw.StartWeekday, DefaultStartWeekday),
		TodayColor: ColorPair{
			Background: orDefault(raw.TodayBackgroundColor, DefaultTodayBackground),
			Text:       orDefault(raw.TodayTextColor, DefaultTodayText),
		},
	}

	if cfg.ShowLastWeeks < 0 {
		return WidgetConfig{}, &ConfigError{Field: "show_last_weeks", Err: ErrNegativeWeeks}
	}
	if cfg.ShowFollowWeeks < 0 {
		return WidgetConfig{}, &ConfigError{Field: "show_follow_weeks", Err: ErrNegativeWeeks}
	}
	if !constants.IsValidWeekday(cfg.StartWeekday) {
		return WidgetConfig{}, &ConfigError{Field: "start_weekday", Err: ErrInvalidWeekday}
	}

	if raw.WeekdayColors == nil {
		cfg.WeekdayColors = DefaultWeekdayColors()
		return cfg, nil
	}

	cfg.WeekdayColors = make([]WeekdayColor, 0, len(raw.WeekdayColors))
	for i, wc := range raw.WeekdayColors {
		if !constants.IsValidWeekday(wc.Weekday) {
			return WidgetConfig{}, &ConfigError{
				Field: fmt.Sprintf("weekday_background_color[%d].weekday", i),
				Err:   ErrInvalidWeekday,
			}
		}
		cfg.WeekdayColors = append(cfg.WeekdayColors, WeekdayColor{
			Weekday:   wc.Weekday,
			ColorPair: ColorPair{Background: wc.BackgroundColor, Text: wc.TextColor},
		})
	}
	return cfg, nil
}

// Clone returns a deep copy of the configuration
func (c WidgetConfig) Clone() WidgetConfig {
	c.WeekdayColors = slices.Clone(c.WeekdayColors)
	return c
}

// WeekdayOverride returns the last configured color pair for weekday
func (c WidgetConfig) WeekdayOverride(weekday int) (ColorPair, bool) {
	for i := len(c.WeekdayColors) - 1; i >= 0; i-- {
		if c.WeekdayColors[i].Weekday == weekday {
			return c.WeekdayColors[i].ColorPair, true
		}
	}
	return ColorPair{}, false
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

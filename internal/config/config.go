package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/belphemur/weekly-calendar-card/internal/constants"
	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DateLayout is the format of dashboard.today
const DateLayout = "2006-01-02"

// Config holds the preview host configuration
type Config struct {
	Service   ServiceConfig   `koanf:"service"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	States    []StateConfig   `koanf:"states"`
}

// ServiceConfig holds process level settings
type ServiceConfig struct {
	LogLevel string                 `koanf:"log_level"`
	Output   constants.OutputFormat `koanf:"output"`
	Watch    bool                   `koanf:"watch"`
}

// DashboardConfig holds the mounted cards
type DashboardConfig struct {
	// Today fixes the reference date (YYYY-MM-DD); empty means the current date
	Today string           `koanf:"today"`
	Cards []map[string]any `koanf:"cards"`
}

// StateConfig seeds one entity state
type StateConfig struct {
	EntityID   string         `koanf:"entity_id"`
	State      string         `koanf:"state"`
	Attributes map[string]any `koanf:"attributes"`
}

func defaults() map[string]any {
	return map[string]any{
		"service.log_level": "info",
		"service.output":    string(constants.OutputTerminal),
		"service.watch":     false,
	}
}

// Load reads defaults, the TOML file at path, then WEEKCAL_ environment
// overrides. Nested keys in variables are separated by a double underscore,
// e.g. WEEKCAL_SERVICE__LOG_LEVEL.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        constants.EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", path).
		Int("cards", len(cfg.Dashboard.Cards)).
		Int("states", len(cfg.States)).
		Msg("Configuration loaded")
	return &cfg, nil
}

func transformEnv(key, value string) (string, any) {
	key = strings.TrimPrefix(key, constants.EnvPrefix)
	key = strings.ReplaceAll(strings.ToLower(key), "__", ".")
	return key, value
}

// TodayDate parses Dashboard.Today. ok is false when no date is fixed.
func (c *Config) TodayDate(loc *time.Location) (t time.Time, ok bool, err error) {
	if c.Dashboard.Today == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(DateLayout, c.Dashboard.Today, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid dashboard.today %q: %w", c.Dashboard.Today, err)
	}
	return t, true, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	var result *multierror.Error

	if _, ok := logging.ParseLevel(cfg.Service.LogLevel); !ok {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %s", cfg.Service.LogLevel))
	}

	if _, err := constants.ParseOutputFormat(cfg.Service.Output.String()); err != nil {
		result = multierror.Append(result, err)
	}

	if _, _, err := cfg.TodayDate(time.UTC); err != nil {
		result = multierror.Append(result, err)
	}

	for i, c := range cfg.Dashboard.Cards {
		if cardType, _ := c["type"].(string); cardType == "" {
			result = multierror.Append(result, fmt.Errorf("dashboard.cards[%d]: type is required", i))
		}
	}

	for i, s := range cfg.States {
		if s.EntityID == "" {
			result = multierror.Append(result, fmt.Errorf("states[%d]: entity_id is required", i))
		}
	}

	return result.ErrorOrNil()
}

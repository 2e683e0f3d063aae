package config

import (
	"fmt"

	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/knadh/koanf/providers/file"
)

// Watch calls onChange with the re-loaded configuration every time the file
// at path changes. Reload failures are logged and skipped. Call stop to end
// watching.
func Watch(path string, onChange func(*Config)) (stop func() error, err error) {
	logger := logging.GetLogger("config-watch").With().Str("path", path).Logger()
	provider := file.Provider(path)

	err = provider.Watch(func(event any, err error) {
		if err != nil {
			logger.Error().Err(err).Msg("Config watch error")
			return
		}

		cfg, err := Load(path)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to reload configuration, keeping previous one")
			return
		}

		logger.Info().Msg("Configuration reloaded")
		onChange(cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch config file %s: %w", path, err)
	}

	return provider.Unwatch, nil
}

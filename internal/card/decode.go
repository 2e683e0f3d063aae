package card

import (
	"fmt"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
	"github.com/go-viper/mapstructure/v2"
)

// DecodeRawConfig converts a host supplied configuration map into a RawConfig.
// Numbers given as strings or floats are accepted; unknown keys are ignored.
func DecodeRawConfig(raw map[string]any) (calendar.RawConfig, error) {
	var out calendar.RawConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return calendar.RawConfig{}, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return calendar.RawConfig{}, fmt.Errorf("failed to decode card configuration: %w", err)
	}
	return out, nil
}

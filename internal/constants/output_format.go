// Package constants provides shared constants for the weekly calendar card
package constants

import (
	"fmt"
	"strings"
)

// OutputFormat selects how the preview host renders cards
type OutputFormat string

const (
	// OutputTerminal renders cards as colored text blocks
	OutputTerminal OutputFormat = "terminal"
	// OutputHTML renders cards as HTML fragments
	OutputHTML OutputFormat = "html"
)

// IsValid checks if the output format value is valid
func (o OutputFormat) IsValid() bool {
	return o == OutputTerminal || o == OutputHTML
}

// String returns the string representation of the output format
func (o OutputFormat) String() string {
	return string(o)
}

// ParseOutputFormat parses a string into an OutputFormat
// Returns an error if the value is invalid
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(s)
	if !format.IsValid() {
		names := make([]string, 0, len(GetAllOutputFormats()))
		for _, f := range GetAllOutputFormats() {
			names = append(names, string(f))
		}
		return "", fmt.Errorf("invalid output format: %s (must be one of %s)", s, strings.Join(names, ", "))
	}
	return format, nil
}

// GetAllOutputFormats returns all valid output formats
func GetAllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputTerminal, OutputHTML}
}

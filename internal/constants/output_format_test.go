package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{name: "terminal is valid", format: OutputTerminal, expected: true},
		{name: "html is valid", format: OutputHTML, expected: true},
		{name: "empty string is invalid", format: OutputFormat(""), expected: false},
		{name: "uppercase is invalid", format: OutputFormat("HTML"), expected: false},
		{name: "unknown is invalid", format: OutputFormat("pdf"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	format, err := ParseOutputFormat("html")
	require.NoError(t, err)
	assert.Equal(t, OutputHTML, format)
	assert.Equal(t, "html", format.String())

	_, err = ParseOutputFormat("svg")
	require.Error(t, err)
	assert.Equal(t, "invalid output format: svg (must be one of terminal, html)", err.Error())
}

func TestGetAllOutputFormats(t *testing.T) {
	formats := GetAllOutputFormats()
	require.Len(t, formats, 2)
	for _, f := range formats {
		assert.True(t, f.IsValid())
	}
}

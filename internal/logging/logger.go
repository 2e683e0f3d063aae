package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Initialize sets up the global logger. Output goes to stderr so that
// rendered cards on stdout stay clean.
func Initialize(isDevelopment bool) {
	InitializeWithWriter(os.Stderr, isDevelopment)
}

// InitializeWithWriter sets up the global logger writing to out
func InitializeWithWriter(out io.Writer, isDevelopment bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	output := out
	if isDevelopment {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if isDevelopment {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// GetLogger returns a logger with the component field set
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ParseLevel maps a textual level to a zerolog level.
// Unknown or empty values map to InfoLevel and ok is false.
func ParseLevel(level string) (lvl zerolog.Level, ok bool) {
	switch level {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// SetLogLevel sets the global log level, defaulting to info when level is invalid
func SetLogLevel(level string) zerolog.Level {
	lvl, _ := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)
	return lvl
}

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "karla-connector"

// New returns the process logger writing to stdout. pretty switches to
// console output for local runs.
func New(level string, pretty bool) zerolog.Logger {
	if pretty {
		return build(level, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Caller().Logger()
	}
	return build(level, os.Stdout).With().Caller().Logger()
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(level, w)
}

// Component tags a child logger; every service and adapter logs under one.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func build(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// ParseLevel maps a config level name to zerolog. Unknown names mean info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		if strings.EqualFold(strings.TrimSpace(level), "warning") {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	}
	return l
}

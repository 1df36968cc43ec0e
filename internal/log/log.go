// Package log provides the process-wide structured logger. Grounded on
// FocusStreamer's internal/logger package: a zerolog.Logger configured once
// at startup, with component-scoped children handed out to each subsystem.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// base is the process-wide logger, reconfigured by Init once daemon flags
// are parsed. Packages obtain their own scoped logger via WithComponent
// rather than writing to this directly.
var base zerolog.Logger

func init() {
	base = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init reconfigures the global logger's level and output format. pretty
// selects a human-readable console writer (for an interactive terminal);
// otherwise newline-delimited JSON is written, suitable for systemd/journal
// capture.
func Init(level string, pretty bool) {
	zerolog.SetGlobalLevel(parseLevel(level))

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	base = zerolog.New(out).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a logger tagged with component, e.g.
// log.WithComponent("ipc"), log.WithComponent("wm").
func WithComponent(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// Get returns the raw process-wide logger, for call sites that don't belong
// to a single component.
func Get() *zerolog.Logger {
	return &base
}

// Package logging builds the charmbracelet/log logger used across the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
)

// Prefix is printed before every log line.
const Prefix = "todolist"

// New returns a logger writing to w.
// --debug wins over --quiet, which wins over the configured level.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	level := ParseLevel(cfg.Settings.Log.Level)
	switch {
	case cfg.Debug:
		level = log.DebugLevel
	case cfg.Quiet:
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:     level,
		Formatter: ParseFormatter(cfg.Settings.Log.Format),
		Prefix:    Prefix,
	})
}

// ParseLevel parses a string log level. Unknown values mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown values mean text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/logging"
)

func TestNew_LevelPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		quiet  bool
		level  string
		expect log.Level
	}{
		{"settings level", false, false, "error", log.ErrorLevel},
		{"quiet overrides settings", false, true, "debug", log.WarnLevel},
		{"debug overrides quiet", true, true, "error", log.DebugLevel},
		{"unknown level is info", false, false, "loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Debug: tt.debug, Quiet: tt.quiet, Settings: config.DefaultSettings()}
			cfg.Settings.Log.Level = tt.level
			logger := logging.New(&bytes.Buffer{}, cfg)
			if got := logger.GetLevel(); got != tt.expect {
				t.Errorf("expected level %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestNew_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Settings: config.DefaultSettings()}
	cfg.Settings.Log.Format = "json"

	logging.New(&buf, cfg).Info("item added", "id", 1)

	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"item added"`) {
		t.Errorf("expected JSON log line, got %q", out)
	}
}

func TestParseFormatter(t *testing.T) {
	if logging.ParseFormatter("LOGFMT") != log.LogfmtFormatter {
		t.Error("expected logfmt formatter")
	}
	if logging.ParseFormatter("") != log.TextFormatter {
		t.Error("expected text formatter for empty input")
	}
}

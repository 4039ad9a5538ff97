package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(slog.LevelInfo, "text", &buf)

	logger.Info("session resumed", "user_id", 7)

	out := buf.String()
	if !strings.Contains(out, "session resumed") || !strings.Contains(out, "user_id=7") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(slog.LevelInfo, "json", &buf)

	logger.Info("session resumed", "user_id", 7)

	out := buf.String()
	if !strings.Contains(out, `"msg":"session resumed"`) || !strings.Contains(out, `"user_id":7`) {
		t.Errorf("unexpected json output: %s", out)
	}
}

func TestNewWithWriter_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(slog.LevelInfo, "yaml", &buf)

	logger.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text handler for unknown format, got: %s", buf.String())
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(slog.LevelWarn, "text", &buf)

	logger.Debug("verbose detail")
	logger.Warn("token check failed")

	out := buf.String()
	if strings.Contains(out, "verbose detail") {
		t.Errorf("DEBUG must be filtered at WARN, got: %s", out)
	}
	if !strings.Contains(out, "token check failed") {
		t.Errorf("WARN must pass at WARN, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"trace", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

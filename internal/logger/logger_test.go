package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "info")
	log.Debug("hidden")
	log.Warn("shown", "format", "json")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug record should be filtered at info level:\n%s", out)
	}

	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "format=json") {
		t.Errorf("Expected warn record with attributes:\n%s", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "error")

	log.Warn("before")
	log.SetLevel("debug")
	log.Debug("after", "count", 1)

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("Warn record should be filtered at error level:\n%s", out)
	}

	if !strings.Contains(out, "msg=after") || !strings.Contains(out, "count=1") {
		t.Errorf("Debug record should pass after level change:\n%s", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "error").Error("Invalid configuration", "error", "boom")

	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("Expected error record:\n%s", buf.String())
	}
}

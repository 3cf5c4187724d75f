package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZeroValueLoggerIsSafe(t *testing.T) {
	var l Logger
	// Must not panic and must not write anywhere.
	l.Info("hello")
	l.With(String("k", "v")).Error("boom", Err(errors.New("x")))
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", true)
	l.Info("shown", String("result", "Activated"), Int("bodies", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if entry["message"] != "shown" {
		t.Errorf("message = %v, want %q", entry["message"], "shown")
	}
	if entry["result"] != "Activated" {
		t.Errorf("result = %v, want %q", entry["result"], "Activated")
	}
	if entry["bodies"] != float64(2) {
		t.Errorf("bodies = %v, want 2", entry["bodies"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", true)
	l.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn should be written at warn level, got %q", buf.String())
	}
}

func TestWithFieldsAreFixed(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", true).With(String("app_id", "Toastkit.CLI"))
	l.Info("first")
	l.Info("second")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, `"app_id":"Toastkit.CLI"`) {
			t.Errorf("line missing fixed field: %s", line)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, level parsing and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Tests touching the global level or output do not run in parallel.

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: LevelInfo},
		{input: "debug", want: LevelDebug},
		{input: " INFO ", want: LevelInfo},
		{input: "warning", want: LevelWarn},
		{input: "warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelWarn)
	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	got := buf.String()
	if strings.Contains(got, "debug: 1") || strings.Contains(got, "info: 2") {
		t.Errorf("messages below warn were emitted: %q", got)
	}
	if !strings.Contains(got, "[WARN] warn: 3\n") || !strings.Contains(got, "[ERROR] error: 4\n") {
		t.Errorf("expected warn and error lines, got %q", got)
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelDebug)
	Debug("event %s", "Up")

	if got := buf.String(); got != "[DEBUG] event Up\n" {
		t.Errorf("Debug output = %q", got)
	}
}

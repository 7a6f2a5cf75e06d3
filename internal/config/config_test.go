// ABOUTME: Tests for settings loading, merging and validation
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauromedda/termkeys/pkg/tui/input"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	global := &Settings{PasteLimit: 4096, EscapeTimeoutMS: 80, LogLevel: "warn"}
	project := &Settings{PasteLimit: 1024, BracketedPaste: &off, Mouse: true}

	result := merge(global, project)

	if result.PasteLimit != 1024 {
		t.Errorf("PasteLimit = %d, want 1024", result.PasteLimit)
	}
	if result.EscapeTimeoutMS != 80 {
		t.Errorf("EscapeTimeoutMS = %d, want 80", result.EscapeTimeoutMS)
	}
	if result.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", result.LogLevel)
	}
	if result.PasteEnabled() {
		t.Error("PasteEnabled() = true, want false from project")
	}
	if !result.Mouse {
		t.Error("Mouse = false, want true from project")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
	if !result.PasteEnabled() {
		t.Error("bracketed paste should default to enabled")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/settings.json")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil Settings on missing file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, `{"paste_limit": "lots"}`)

	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error for invalid settings")
	}
}

func TestLoadFrom_MergesAndResolvesPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	globalPath := filepath.Join(dir, "global", "settings.json")
	projectPath := filepath.Join(dir, "project", ".termkeys", "settings.json")
	writeFile(t, globalPath, `{"paste_limit": 100, "sequences_file": "seq.yaml", "log_level": "debug"}`)
	writeFile(t, projectPath, `{"escape_timeout_ms": 25, "log_file": "/tmp/termkeys.log"}`)

	s, err := LoadFrom(globalPath, projectPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.PasteLimit != 100 {
		t.Errorf("PasteLimit = %d, want 100", s.PasteLimit)
	}
	if want := filepath.Join(dir, "global", "seq.yaml"); s.SequencesFile != want {
		t.Errorf("SequencesFile = %q, want %q", s.SequencesFile, want)
	}
	if s.LogFile != "/tmp/termkeys.log" {
		t.Errorf("LogFile = %q, want absolute path unchanged", s.LogFile)
	}
	if got := s.EscapeTimeout(); got != 25*time.Millisecond {
		t.Errorf("EscapeTimeout() = %v, want 25ms", got)
	}
}

func TestLoadFrom_MissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := LoadFrom(filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got := s.EscapeTimeout(); got != input.DefaultEscapeTimeout {
		t.Errorf("EscapeTimeout() = %v, want default %v", got, input.DefaultEscapeTimeout)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{name: "zero", s: Settings{}},
		{name: "negative paste limit", s: Settings{PasteLimit: -1}, wantErr: true},
		{name: "negative timeout", s: Settings{EscapeTimeoutMS: -5}, wantErr: true},
		{name: "unknown log level", s: Settings{LogLevel: "loud"}, wantErr: true},
		{name: "valid", s: Settings{PasteLimit: 10, EscapeTimeoutMS: 10, LogLevel: "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSequencesPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(root, "global"))

	if got := SequencesPath(&Settings{}, root); got != "" {
		t.Errorf("SequencesPath with no files = %q, want empty", got)
	}

	globalSeq := filepath.Join(root, "global", "sequences.yaml")
	writeFile(t, globalSeq, "sequences: []\n")
	if got := SequencesPath(&Settings{}, root); got != globalSeq {
		t.Errorf("SequencesPath = %q, want %q", got, globalSeq)
	}

	projectSeq := filepath.Join(root, ".termkeys", "sequences.yaml")
	writeFile(t, projectSeq, "sequences: []\n")
	if got := SequencesPath(&Settings{}, root); got != projectSeq {
		t.Errorf("SequencesPath = %q, want project file %q", got, projectSeq)
	}

	if got := SequencesPath(&Settings{SequencesFile: "/x.yaml"}, root); got != "/x.yaml" {
		t.Errorf("SequencesPath with explicit file = %q", got)
	}
}

// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration using encoding/json; relative paths resolve against the defining file

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mauromedda/termkeys/internal/log"
	"github.com/mauromedda/termkeys/pkg/tui/input"
)

// Settings holds the merged configuration.
type Settings struct {
	// PasteLimit caps bracketed-paste payloads, in bytes. Zero is unbounded.
	PasteLimit int `json:"paste_limit,omitempty"`
	// EscapeTimeoutMS is how long an ambiguous prefix waits before a flush.
	EscapeTimeoutMS int    `json:"escape_timeout_ms,omitempty"`
	LogLevel        string `json:"log_level,omitempty"`
	LogFile         string `json:"log_file,omitempty"`
	SequencesFile   string `json:"sequences_file,omitempty"`

	// BracketedPaste defaults to on; Mouse to off.
	BracketedPaste *bool `json:"bracketed_paste,omitempty"`
	Mouse          bool  `json:"mouse,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadFrom(GlobalSettingsFile(), ProjectSettingsFile(projectRoot))
}

// LoadFrom is Load with explicit file paths. Missing files are skipped.
func LoadFrom(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	merged := merge(global, project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	ResolveEnvVars(&s)
	s.resolvePaths(filepath.Dir(path))
	return &s, nil
}

func (s *Settings) resolvePaths(base string) {
	if s.SequencesFile != "" && !filepath.IsAbs(s.SequencesFile) {
		s.SequencesFile = filepath.Join(base, s.SequencesFile)
	}
	if s.LogFile != "" && !filepath.IsAbs(s.LogFile) {
		s.LogFile = filepath.Join(base, s.LogFile)
	}
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.PasteLimit != 0 {
		result.PasteLimit = project.PasteLimit
	}
	if project.EscapeTimeoutMS != 0 {
		result.EscapeTimeoutMS = project.EscapeTimeoutMS
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.SequencesFile != "" {
		result.SequencesFile = project.SequencesFile
	}
	if project.BracketedPaste != nil {
		v := *project.BracketedPaste
		result.BracketedPaste = &v
	}
	if project.Mouse {
		result.Mouse = true
	}

	return &result
}

// Validate rejects values no component can honor.
func (s *Settings) Validate() error {
	if s.PasteLimit < 0 {
		return fmt.Errorf("paste_limit must not be negative, got %d", s.PasteLimit)
	}
	if s.EscapeTimeoutMS < 0 {
		return fmt.Errorf("escape_timeout_ms must not be negative, got %d", s.EscapeTimeoutMS)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// EscapeTimeout returns the idle flush delay, defaulting to the input
// package's.
func (s *Settings) EscapeTimeout() time.Duration {
	if s.EscapeTimeoutMS == 0 {
		return input.DefaultEscapeTimeout
	}
	return time.Duration(s.EscapeTimeoutMS) * time.Millisecond
}

// PasteEnabled reports whether bracketed paste should be requested.
func (s *Settings) PasteEnabled() bool {
	return s.BracketedPaste == nil || *s.BracketedPaste
}

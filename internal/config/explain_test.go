// ABOUTME: Tests for human-readable config explanation rendering
// ABOUTME: Covers defaults, explicit settings and sequence file discovery

package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestExplain_Defaults(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	result := Explain(nil, t.TempDir())

	for _, want := range []string{
		"=== Input ===",
		"EscapeTimeout:  50ms",
		"PasteLimit:     unbounded",
		"BracketedPaste: true",
		"Mouse:          false",
		"(built-in table only)",
		"Level: info",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Explain output missing %q:\n%s", want, result)
		}
	}
}

func TestExplain_FullSettings(t *testing.T) {
	t.Parallel()

	off := false
	s := &Settings{
		PasteLimit:      4096,
		EscapeTimeoutMS: 100,
		LogLevel:        "debug",
		LogFile:         "/var/log/termkeys.log",
		SequencesFile:   "/etc/termkeys/sequences.yaml",
		BracketedPaste:  &off,
		Mouse:           true,
	}

	result := Explain(s, t.TempDir())

	for _, want := range []string{
		"EscapeTimeout:  100ms",
		"PasteLimit:     4096 bytes",
		"BracketedPaste: false",
		"Mouse:          true",
		"File: /etc/termkeys/sequences.yaml",
		"Level: debug",
		"File:  /var/log/termkeys.log",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Explain output missing %q:\n%s", want, result)
		}
	}
}

func TestExplain_DiscoversProjectSequences(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	root := t.TempDir()
	path := filepath.Join(ProjectDir(root), sequencesFileName)
	writeFile(t, path, "sequences: []\n")

	result := Explain(&Settings{}, root)
	if !strings.Contains(result, "File: "+path) {
		t.Errorf("Explain output should name %s:\n%s", path, result)
	}
}

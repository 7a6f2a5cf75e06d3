// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_SEQ_DIR", "/etc/termkeys")
	result := expandEnv("${TEST_SEQ_DIR}")
	if result != "/etc/termkeys" {
		t.Errorf("expandEnv = %q; want %q", result, "/etc/termkeys")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("MY_TERM", "xterm")
	result := expandEnv("seqs/${MY_TERM}.yaml")
	if result != "seqs/xterm.yaml" {
		t.Errorf("expandEnv = %q; want %q", result, "seqs/xterm.yaml")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestResolveEnvVars_SettingsFields(t *testing.T) {
	t.Setenv("TEST_TERMKEYS_HOME", "/home/u")

	s := &Settings{
		SequencesFile: "${TEST_TERMKEYS_HOME}/sequences.yaml",
		LogFile:       "${TEST_TERMKEYS_HOME}/termkeys.log",
	}

	ResolveEnvVars(s)

	if s.SequencesFile != "/home/u/sequences.yaml" {
		t.Errorf("SequencesFile = %q; want %q", s.SequencesFile, "/home/u/sequences.yaml")
	}
	if s.LogFile != "/home/u/termkeys.log" {
		t.Errorf("LogFile = %q; want %q", s.LogFile, "/home/u/termkeys.log")
	}
}

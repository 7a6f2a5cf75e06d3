// ABOUTME: Standard filesystem paths for termkeys configuration
// ABOUTME: Resolves ~/.termkeys/ (or $TERMKEYS_CONFIG_DIR) for global and .termkeys/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName           = ".termkeys"
	settingsFileName  = "settings.json"
	sequencesFileName = "sequences.yaml"

	// EnvConfigDir overrides the global config directory.
	EnvConfigDir = "TERMKEYS_CONFIG_DIR"
)

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory (.termkeys/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), settingsFileName)
}

// ProjectSettingsFile returns the path to the project settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), settingsFileName)
}

// DefaultSequencesFiles returns the sequence files looked up when settings
// name none, project-local first.
func DefaultSequencesFiles(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), sequencesFileName),
		filepath.Join(GlobalDir(), sequencesFileName),
	}
}

// SequencesPath returns the sequence file to load: the one named in s, or the
// first default that exists. It returns "" when there is none.
func SequencesPath(s *Settings, projectRoot string) string {
	if s != nil && s.SequencesFile != "" {
		return s.SequencesFile
	}
	for _, p := range DefaultSequencesFiles(projectRoot) {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}

// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the -explain CLI flag to show merged settings and the sequence file in use

package config

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
// Defaults are shown for unset values so the output reflects what runs.
func Explain(s *Settings, projectRoot string) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Input ===\n")
	fmt.Fprintf(&b, "  EscapeTimeout:  %s\n", s.EscapeTimeout())
	if s.PasteLimit > 0 {
		fmt.Fprintf(&b, "  PasteLimit:     %d bytes\n", s.PasteLimit)
	} else {
		b.WriteString("  PasteLimit:     unbounded\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Terminal ===\n")
	fmt.Fprintf(&b, "  BracketedPaste: %v\n", s.PasteEnabled())
	fmt.Fprintf(&b, "  Mouse:          %v\n", s.Mouse)
	b.WriteString("\n")

	b.WriteString("=== Sequences ===\n")
	if path := SequencesPath(s, projectRoot); path != "" {
		fmt.Fprintf(&b, "  File: %s\n", path)
	} else {
		b.WriteString("  File: (built-in table only)\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	level := s.LogLevel
	if level == "" {
		level = "info"
	}
	fmt.Fprintf(&b, "  Level: %s\n", level)
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  File:  %s\n", s.LogFile)
	}
	b.WriteString("\n")

	return b.String()
}

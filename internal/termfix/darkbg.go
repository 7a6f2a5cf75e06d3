// ABOUTME: Pre-sets lipgloss dark background before Bubble Tea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// An OSC 11 background query is answered on stdin, where the key
	// viewer would show the reply as input it never typed. Declaring the
	// background up front means lipgloss never asks.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}

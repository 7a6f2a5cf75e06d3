// ABOUTME: Verifies the dark background preset is in place once the package is loaded
// ABOUTME: HasDarkBackground must answer without querying the terminal

package termfix

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDarkBackgroundPreset(t *testing.T) {
	if !lipgloss.HasDarkBackground() {
		t.Error("expected the dark background preset to be active")
	}
}

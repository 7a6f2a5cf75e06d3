// ABOUTME: Lipgloss styles for the key event viewer
// ABOUTME: Colors rows by key family so reports, custom keys and unknown input stand apart

package interactive

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// Styles holds the viewer palette.
type Styles struct {
	Title     lipgloss.Style
	Key       lipgloss.Style
	Report    lipgloss.Style
	Custom    lipgloss.Style
	Undefined lipgloss.Style
	Raw       lipgloss.Style
	Text      lipgloss.Style
	Action    lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the 256-color palette used on dark backgrounds.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Report:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Custom:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Undefined: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Raw:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Action:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("179")),
		Footer:    lipgloss.NewStyle().Faint(true),
	}
}

// keyStyle picks the style for a key name column.
func (s Styles) keyStyle(k key.Key) lipgloss.Style {
	switch {
	case k.IsReport():
		return s.Report
	case k.IsCustom():
		return s.Custom
	case k == key.NotDefined:
		return s.Undefined
	default:
		return s.Key
	}
}

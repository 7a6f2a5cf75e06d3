// ABOUTME: Bubble Tea message types carrying parsed input into the viewer
// ABOUTME: Sent from the StdinBuffer goroutine through a ProgramSender

package interactive

import "github.com/mauromedda/termkeys/pkg/tui/key"

// KeyEventMsg carries one parsed event.
type KeyEventMsg struct {
	Event key.Event
}

// InputClosedMsg reports that the input stream ended.
type InputClosedMsg struct{}

// ABOUTME: StdinBuffer-to-Bubble Tea bridge that converts parsed key events to tea.Msg
// ABOUTME: Bubble Tea runs without its own input reader, so this is the only input path

package interactive

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termkeys/pkg/tui/input"
	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// ProgramSender is the interface for sending messages to Bubble Tea.
// Matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// EventSender returns a StdinBuffer callback that forwards every event to
// program as a KeyEventMsg.
func EventSender(program ProgramSender) func(key.Event) {
	return func(ev key.Event) {
		program.Send(KeyEventMsg{Event: ev})
	}
}

// RunInputBridge reads buf until ctx is done or the input ends, then tells
// program the input is gone.
func RunInputBridge(ctx context.Context, program ProgramSender, buf *input.StdinBuffer) {
	buf.Start(ctx)
	if ctx.Err() == nil {
		program.Send(InputClosedMsg{})
	}
}

// ABOUTME: Event dump formatters for replay mode: aligned text rows and JSON lines
// ABOUTME: JSON lines share the RPC event encoding so both outputs can be diffed

package replay

import (
	"fmt"
	"io"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/internal/mode/rpc"
	"github.com/mauromedda/termkeys/pkg/tui/key"
	"github.com/mauromedda/termkeys/pkg/tui/width"
)

const (
	keyColWidth  = 18
	rawColWidth  = 30
	textColWidth = 40
)

type formatter interface {
	event(ev key.Event) error
	end(bytes, events int) error
}

func newFormatter(format string, w io.Writer, keys *keybindings.Manager) formatter {
	switch format {
	case "jsonl":
		return &jsonlFormatter{w: w}
	default:
		return &textFormatter{w: w, keys: keys}
	}
}

// textFormatter writes one aligned row per event and a summary line.
type textFormatter struct {
	w    io.Writer
	keys *keybindings.Manager
}

func (f *textFormatter) event(ev key.Event) error {
	name := f.keys.KeyName(ev.Key)
	if ev.Truncated {
		name += "*"
	}
	row := width.Pad(name, keyColWidth) + " " +
		width.Pad(width.Truncate(key.FormatBytes(ev.Raw), rawColWidth), rawColWidth)
	if ev.HasText() {
		row += " " + width.Truncate(width.Printable(ev.Text), textColWidth)
	}
	_, err := fmt.Fprintln(f.w, row)
	return err
}

func (f *textFormatter) end(bytes, events int) error {
	_, err := fmt.Fprintf(f.w, "-- %d bytes, %d events\n", bytes, events)
	return err
}

// jsonlFormatter writes one JSON object per event.
type jsonlFormatter struct {
	w io.Writer
}

func (f *jsonlFormatter) event(ev key.Event) error {
	w := jwriter.Writer{}
	rpc.WriteEvent(&w, ev)
	w.RawByte('\n')
	_, err := w.DumpTo(f.w)
	return err
}

func (f *jsonlFormatter) end(int, int) error { return nil }

// ABOUTME: Zero-reflection JSON encoding of parsed key events with easyjson's jwriter
// ABOUTME: Events are the hot path of parser.feed, so they bypass encoding/json reflection

package rpc

import (
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// Events is a list of parsed events with a hand-written easyjson encoder.
//
// Each event is encoded as
//
//	{"key":"Up","code":42,"raw":"G1tB","text":"...","truncated":true}
//
// with text and truncated omitted when empty.
type Events []key.Event

// MarshalEasyJSON implements easyjson.Marshaler.
func (e Events) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, ev := range e {
		if i > 0 {
			w.RawByte(',')
		}
		WriteEvent(w, ev)
	}
	w.RawByte(']')
}

// MarshalJSON implements json.Marshaler.
func (e Events) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	e.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// WriteEvent encodes one event as a JSON object.
func WriteEvent(w *jwriter.Writer, ev key.Event) {
	w.RawString(`{"key":`)
	w.String(ev.Key.String())
	w.RawString(`,"code":`)
	w.Uint32(ev.Key.Code())
	w.RawString(`,"raw":`)
	w.Base64Bytes(ev.Raw)
	if ev.Text != "" {
		w.RawString(`,"text":`)
		w.String(ev.Text)
	}
	if ev.Truncated {
		w.RawString(`,"truncated":true`)
	}
	w.RawByte('}')
}

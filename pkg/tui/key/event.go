// ABOUTME: Event is the record emitted for every resolved unit of terminal input.
// ABOUTME: Carries the Key tag, the exact consumed bytes and decoded text for character input.

package key

import (
	"fmt"
	"strings"
)

// Event is one resolved unit of input.
//
// Raw always holds exactly the bytes consumed to produce the event, so
// concatenating Raw across a stream of events reproduces the input.
type Event struct {
	Key  Key
	Raw  []byte
	Text string // Decoded character input; empty for keys and reports

	// Truncated marks a BracketedPaste event cut at the paste limit, or forced
	// out by a flush, before the end marker arrived. More payload may follow.
	Truncated bool
}

// HasText reports whether the event carries decoded character input.
func (e Event) HasText() bool {
	return e.Text != ""
}

// String renders the event for logs and debug dumps.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Key.String())
	fmt.Fprintf(&b, " raw=%q", e.Raw)
	if e.HasText() {
		fmt.Fprintf(&b, " text=%q", e.Text)
	}
	if e.Truncated {
		b.WriteString(" truncated")
	}
	return b.String()
}

// FormatBytes renders raw input as space-separated hex pairs ("1b 5b 41").
func FormatBytes(raw []byte) string {
	var b strings.Builder
	for i, c := range raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

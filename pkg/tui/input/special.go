// ABOUTME: Sub-matchers for variable-length report families: generic CSI, CPR, mouse and paste.
// ABOUTME: Each consumes bytes one at a time so results never depend on chunk boundaries.

package input

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/termkeys/pkg/tui/key"
)

const (
	maxCSILen = 64 // Longest CSI sequence accumulated before giving up
	maxSGRLen = 32 // Longest SGR mouse report accumulated before giving up
	x10Len    = 6  // ESC [ M plus button, column and row bytes
)

var pasteEnd = []byte(key.MarkerPasteEnd)

type csiStatus int

const (
	csiNone       csiStatus = iota // Not a CSI sequence, or malformed
	csiIncomplete                  // Well-formed so far, no final byte yet
	csiComplete                    // Terminated by a final byte
	csiOverlong                    // maxCSILen bytes without a final byte
)

func isCSIParam(b byte) bool { return b >= 0x20 && b <= 0x3f }
func isCSIFinal(b byte) bool { return b >= 0x40 && b <= 0x7e }

// scanCSI measures the control sequence at the front of buf: ESC [, any
// parameter and intermediate bytes, then one final byte. A bare ESC [ is not
// reported, so a flushed Alt+[ still resolves as Escape followed by '['.
func scanCSI(buf []byte) (int, csiStatus) {
	if len(buf) < 3 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, csiNone
	}
	for i := 2; i < len(buf); i++ {
		if i >= maxCSILen {
			return maxCSILen, csiOverlong
		}
		switch b := buf[i]; {
		case isCSIFinal(b):
			return i + 1, csiComplete
		case !isCSIParam(b):
			return 0, csiNone
		}
	}
	if len(buf) >= maxCSILen {
		return maxCSILen, csiOverlong
	}
	return len(buf), csiIncomplete
}

// isCPR reports whether seq is a cursor position report: ESC [ row ; col R.
func isCPR(seq []byte) bool {
	if len(seq) < 6 || seq[len(seq)-1] != 'R' {
		return false
	}
	return numericFields(seq[2:len(seq)-1], 2)
}

// isSGRMouse reports whether seq is ESC [ < button ; col ; row followed by M or m.
func isSGRMouse(seq []byte) bool {
	prefix := len(key.MarkerSGRMouse)
	if len(seq) <= prefix+1 {
		return false
	}
	last := seq[len(seq)-1]
	if last != 'M' && last != 'm' {
		return false
	}
	return numericFields(seq[prefix:len(seq)-1], 3)
}

// numericFields reports whether params is exactly n non-empty runs of ASCII
// digits separated by semicolons.
func numericFields(params []byte, n int) bool {
	fields := bytes.Split(params, []byte{';'})
	if len(fields) != n {
		return false
	}
	for _, f := range fields {
		if len(f) == 0 {
			return false
		}
		for _, c := range f {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// emitCSI resolves the first n pending bytes as one control sequence.
func (p *Parser) emitCSI(events []key.Event, n int) []key.Event {
	k := key.NotDefined
	if isCPR(p.pending[:n]) {
		k = key.CPRResponse
	}
	return p.emit(events, key.Event{Key: k}, n)
}

// accumulate feeds pending bytes to the active special-mode matcher until it
// completes or pending runs out.
func (p *Parser) accumulate(events []key.Event) ([]key.Event, bool) {
	switch p.mode {
	case ModeCSI:
		return p.accumulateCSI(events), true
	case ModeX10Mouse:
		return p.accumulateX10(events), true
	case ModeSGRMouse:
		return p.accumulateSGR(events), true
	case ModePaste:
		return p.accumulatePaste(events), true
	default:
		return events, false
	}
}

func (p *Parser) accumulateCSI(events []key.Event) []key.Event {
	for len(p.pending) > 0 {
		b := p.pending[0]
		switch {
		case isCSIFinal(b):
			p.capture = append(p.capture, b)
			p.pending = p.pending[1:]
			k := key.NotDefined
			if isCPR(p.capture) {
				k = key.CPRResponse
			}
			return p.emitCapture(events, key.Event{Key: k})
		case isCSIParam(b):
			p.capture = append(p.capture, b)
			p.pending = p.pending[1:]
			if len(p.capture) >= maxCSILen {
				return p.emitCapture(events, key.Event{Key: key.NotDefined})
			}
		default:
			// Malformed: hand everything back to trie matching, which now
			// sees the offending byte and falls back to the longest match.
			p.pending = append(bytes.Clone(p.capture), p.pending...)
			p.endCapture()
			return events
		}
	}
	return events
}

func (p *Parser) accumulateX10(events []key.Event) []key.Event {
	take := min(x10Len-len(p.capture), len(p.pending))
	p.capture = append(p.capture, p.pending[:take]...)
	p.pending = p.pending[take:]
	if len(p.capture) < x10Len {
		return events
	}
	return p.emitCapture(events, key.Event{Key: key.Vt100MouseEvent})
}

func (p *Parser) accumulateSGR(events []key.Event) []key.Event {
	for len(p.pending) > 0 {
		b := p.pending[0]
		switch {
		case b == 'M' || b == 'm':
			p.capture = append(p.capture, b)
			p.pending = p.pending[1:]
			k := key.NotDefined
			if isSGRMouse(p.capture) {
				k = key.SGRMouseEvent
			}
			return p.emitCapture(events, key.Event{Key: k})
		case (b >= '0' && b <= '9') || b == ';':
			p.capture = append(p.capture, b)
			p.pending = p.pending[1:]
			if len(p.capture) >= maxSGRLen {
				return p.emitCapture(events, key.Event{Key: key.NotDefined})
			}
		default:
			// The offending byte is not part of the report; it is resolved
			// normally after the capture.
			return p.emitCapture(events, key.Event{Key: key.NotDefined})
		}
	}
	return events
}

// accumulatePaste scans for the end marker. With a paste limit, payload
// beyond the limit is released in Truncated segments, holding back enough
// bytes to recognize an end marker split across the cut.
func (p *Parser) accumulatePaste(events []key.Event) []key.Event {
	for len(p.pending) > 0 {
		p.capture = append(p.capture, p.pending[0])
		p.pending = p.pending[1:]

		payload := p.capture[p.payloadStart:]
		if bytes.HasSuffix(payload, pasteEnd) {
			text := pasteText(payload[:len(payload)-len(pasteEnd)])
			return p.emitCapture(events, key.Event{Key: key.BracketedPaste, Text: text})
		}

		if p.pasteLimit > 0 && len(payload) >= p.pasteLimit+len(pasteEnd)-1 {
			events = p.emitPasteSegment(events)
		}
	}
	return events
}

// emitPasteSegment releases up to pasteLimit payload bytes, cut on a UTF-8
// boundary, and keeps accumulating the rest.
func (p *Parser) emitPasteSegment(events []key.Event) []key.Event {
	cut := p.payloadStart + p.pasteLimit
	for back := 0; back < utf8.UTFMax-1 && cut > p.payloadStart+1 && !utf8.RuneStart(p.capture[cut]); back++ {
		cut--
	}

	ev := key.Event{
		Key:       key.BracketedPaste,
		Raw:       bytes.Clone(p.capture[:cut]),
		Text:      pasteText(p.capture[p.payloadStart:cut]),
		Truncated: true,
	}
	p.capture = append(p.capture[:0], p.capture[cut:]...)
	p.payloadStart = 0
	return append(events, ev)
}

// flushCapture force-resolves an unfinished special sequence.
func (p *Parser) flushCapture(events []key.Event) []key.Event {
	if p.mode == ModePaste {
		text := pasteText(p.capture[p.payloadStart:])
		return p.emitCapture(events, key.Event{Key: key.BracketedPaste, Text: text, Truncated: true})
	}
	return p.emitCapture(events, key.Event{Key: key.NotDefined})
}

func pasteText(payload []byte) string {
	if utf8.Valid(payload) {
		return string(payload)
	}
	return strings.ToValidUTF8(string(payload), string(utf8.RuneError))
}

// ABOUTME: Parser turns arbitrarily chunked terminal bytes into ordered key.Event values.
// ABOUTME: Trie-driven matching with longest-match fallback, UTF-8 decoding and explicit wait state.

package input

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// Mode is the parser's accumulation state.
type Mode int

const (
	ModeNormal   Mode = iota // Trie matching
	ModeCSI                  // Unregistered CSI sequence, waiting for its final byte
	ModeX10Mouse             // X10 mouse report, waiting for three payload bytes
	ModeSGRMouse             // SGR mouse report, waiting for M or m
	ModePaste                // Bracketed paste, waiting for the end marker
)

func (m Mode) String() string {
	switch m {
	case ModeCSI:
		return "CSI"
	case ModeX10Mouse:
		return "X10Mouse"
	case ModeSGRMouse:
		return "SGRMouse"
	case ModePaste:
		return "Paste"
	default:
		return "Normal"
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithTable makes the parser resolve against t instead of a private copy of
// the built-in table. Insertions through any owner of t are visible to all.
func WithTable(t *key.Table) Option {
	return func(p *Parser) {
		p.table = t
	}
}

// WithPasteLimit caps bracketed-paste accumulation at n payload bytes. Longer
// pastes are emitted in Truncated segments of at most n bytes. Zero disables
// the cap.
func WithPasteLimit(n int) Option {
	return func(p *Parser) {
		p.pasteLimit = max(n, 0)
	}
}

// Parser is a synchronous, single-owner transformer from bytes to events.
// It performs no I/O and is not safe for concurrent use.
type Parser struct {
	table      *key.Table
	pasteLimit int

	// pending holds bytes not yet resolved in ModeNormal: empty, a strict
	// prefix of a table path, or an incomplete UTF-8 sequence.
	pending []byte

	mode Mode

	// capture holds the sequence being accumulated in a special mode.
	// For ModePaste, payloadStart is where the payload begins in capture.
	capture      []byte
	payloadStart int
}

// NewParser returns a parser in ModeNormal.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.table == nil {
		p.table = key.NewTable()
	}
	return p
}

// Feed appends data and returns every event that can be resolved without
// further input, in byte order. The result does not depend on how the input
// stream is split across calls.
func (p *Parser) Feed(data []byte) []key.Event {
	p.pending = append(p.pending, data...)

	var events []key.Event
	for len(p.pending) > 0 {
		var progressed bool
		if p.mode != ModeNormal {
			events, progressed = p.accumulate(events)
		} else {
			events, progressed = p.step(events, false)
		}
		if !progressed {
			break
		}
	}
	return events
}

// Flush resolves everything buffered, as when no more input is expected.
//
// A special-sequence accumulation is emitted as captured: a paste as a
// Truncated BracketedPaste event, anything else as NotDefined. Pending bytes
// resolve by longest match and the remainder is re-processed with the same
// rules, so no byte is dropped. Afterwards the parser is empty and in
// ModeNormal.
func (p *Parser) Flush() []key.Event {
	var events []key.Event
	for {
		switch {
		case len(p.pending) > 0 && p.mode != ModeNormal:
			events, _ = p.accumulate(events)
		case len(p.pending) > 0:
			events, _ = p.step(events, true)
		case p.mode != ModeNormal:
			events = p.flushCapture(events)
		default:
			p.pending = p.pending[:0]
			return events
		}
	}
}

// Reset discards buffered input and returns to ModeNormal. Registered
// sequences are kept.
func (p *Parser) Reset() {
	p.pending = p.pending[:0]
	p.endCapture()
}

// Insert registers seq as k in the parser's table. It takes effect on the
// next Feed or Flush, including for bytes already pending.
func (p *Parser) Insert(seq []byte, k key.Key) error {
	return p.table.Insert(seq, k)
}

// Table returns the table the parser resolves against.
func (p *Parser) Table() *key.Table {
	return p.table
}

// Mode returns the current accumulation mode.
func (p *Parser) Mode() Mode {
	return p.mode
}

// Pending returns a copy of all buffered, unresolved bytes.
func (p *Parser) Pending() []byte {
	out := make([]byte, 0, len(p.capture)+len(p.pending))
	out = append(out, p.capture...)
	return append(out, p.pending...)
}

// Snapshot is an inspectable copy of a parser's wait state.
type Snapshot struct {
	Mode         Mode
	Pending      []byte
	Capture      []byte
	PayloadStart int
}

// State returns a copy of the parser's wait state.
func (p *Parser) State() Snapshot {
	return Snapshot{
		Mode:         p.mode,
		Pending:      bytes.Clone(p.pending),
		Capture:      bytes.Clone(p.capture),
		PayloadStart: p.payloadStart,
	}
}

// Restore reinstates a state previously returned by State.
func (p *Parser) Restore(s Snapshot) {
	p.mode = s.Mode
	p.pending = append(p.pending[:0], s.Pending...)
	p.capture = append(p.capture[:0], s.Capture...)
	p.payloadStart = min(max(s.PayloadStart, 0), len(p.capture))
}

// step resolves one unit at the front of pending in ModeNormal. It returns
// false when pending must wait for more bytes. With flushing set it never
// waits.
func (p *Parser) step(events []key.Event, flushing bool) ([]key.Event, bool) {
	buf := p.pending

	if !flushing {
		k, kind := p.table.Match(buf)
		switch kind {
		case key.Exact:
			return p.resolve(events, k, len(buf)), true
		case key.Prefix:
			return events, false
		}
	}

	lk, n, found := p.table.LongestMatch(buf)
	if found && markerMode(lk) != ModeNormal {
		return p.resolve(events, lk, n), true
	}

	if u, st := scanCSI(buf); st != csiNone && (!found || u > n) {
		if st == csiIncomplete && !flushing {
			p.beginCapture(ModeCSI, u)
			return events, true
		}
		return p.emitCSI(events, u), true
	}

	if found {
		return p.resolve(events, lk, n), true
	}

	return p.decodeRune(events, flushing)
}

// resolve emits k for the first n pending bytes, or enters the special mode
// k opens.
func (p *Parser) resolve(events []key.Event, k key.Key, n int) []key.Event {
	if mode := markerMode(k); mode != ModeNormal {
		p.beginCapture(mode, n)
		return events
	}
	if k == key.Any {
		k = key.NotDefined
	}
	return p.emit(events, key.Event{Key: k}, n)
}

// decodeRune handles bytes no table entry claims: a complete UTF-8 character
// becomes text, an incomplete one waits, anything else is one NotDefined byte.
func (p *Parser) decodeRune(events []key.Event, flushing bool) ([]key.Event, bool) {
	buf := p.pending
	if !utf8.FullRune(buf) && !flushing {
		return events, false
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return p.emit(events, key.Event{Key: key.NotDefined}, 1), true
	}

	ev := key.Event{Key: key.NotDefined}
	if !unicode.IsControl(r) {
		ev.Text = string(r)
	}
	return p.emit(events, ev, size), true
}

// emit appends ev with the first n pending bytes as Raw and drops them.
func (p *Parser) emit(events []key.Event, ev key.Event, n int) []key.Event {
	ev.Raw = bytes.Clone(p.pending[:n])
	p.pending = p.pending[n:]
	return append(events, ev)
}

// beginCapture moves the first n pending bytes into capture and enters mode.
func (p *Parser) beginCapture(mode Mode, n int) {
	p.mode = mode
	p.capture = append(p.capture[:0], p.pending[:n]...)
	p.payloadStart = n
	p.pending = p.pending[n:]
}

func (p *Parser) endCapture() {
	p.mode = ModeNormal
	p.capture = p.capture[:0]
	p.payloadStart = 0
}

// emitCapture appends ev with the whole capture as Raw and leaves the mode.
func (p *Parser) emitCapture(events []key.Event, ev key.Event) []key.Event {
	ev.Raw = bytes.Clone(p.capture)
	p.endCapture()
	return append(events, ev)
}

// markerMode returns the accumulation mode a resolved key opens.
func markerMode(k key.Key) Mode {
	switch k {
	case key.Vt100MouseEvent:
		return ModeX10Mouse
	case key.SGRMouseEvent:
		return ModeSGRMouse
	case key.BracketedPaste:
		return ModePaste
	default:
		return ModeNormal
	}
}

// ABOUTME: Defines the Terminal interface for raw mode, size queries, input and output.
// ABOUTME: Abstracts the console so the key parser can be driven by real or virtual terminals.

package terminal

import "io"

// Terminal abstracts the console the key parser reads from: raw mode, size
// queries, the input byte stream and an output stream for control sequences.
type Terminal interface {
	io.Reader
	io.Writer
	EnterRawMode() error
	ExitRawMode() error
	IsTerminal() bool
	Size() (width, height int, err error)
}

// Report-enabling control sequences. Terminals answer them with the reports
// the parser recognizes.
const (
	seqPasteOn    = "\x1b[?2004h"
	seqPasteOff   = "\x1b[?2004l"
	seqMouseOn    = "\x1b[?1000h\x1b[?1006h" // button events, SGR encoding
	seqMouseOff   = "\x1b[?1006l\x1b[?1000l"
	seqRequestCPR = "\x1b[6n"
)

// Reports selects which terminal reports EnableReports turns on.
type Reports struct {
	Paste bool
	Mouse bool
}

// EnableReports asks the terminal to wrap pastes in bracketed-paste markers
// and to send SGR mouse reports.
func EnableReports(t io.Writer, r Reports) error {
	var seq string
	if r.Paste {
		seq += seqPasteOn
	}
	if r.Mouse {
		seq += seqMouseOn
	}
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(t, seq)
	return err
}

// DisableReports reverts EnableReports.
func DisableReports(t io.Writer, r Reports) error {
	var seq string
	if r.Mouse {
		seq += seqMouseOff
	}
	if r.Paste {
		seq += seqPasteOff
	}
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(t, seq)
	return err
}

// RequestCursorPosition asks the terminal for a cursor position report,
// which arrives on input as a CPRResponse event.
func RequestCursorPosition(t io.Writer) error {
	_, err := io.WriteString(t, seqRequestCPR)
	return err
}

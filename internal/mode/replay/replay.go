// ABOUTME: Replay mode: feeds a captured byte stream through the parser in fixed-size chunks
// ABOUTME: Dumps events as text rows or JSON lines and can verify the result is chunk-independent

package replay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/internal/log"
	"github.com/mauromedda/termkeys/pkg/tui/input"
	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// ErrChunkMismatch is returned by a verifying replay whose chunked events
// differ from the events of a single feed.
var ErrChunkMismatch = errors.New("chunked replay differs from single feed")

// Config configures a replay.
type Config struct {
	OutputFormat string // "text" (default) or "jsonl"
	Chunk        int    // Bytes per Feed call; 0 feeds everything at once
	PasteLimit   int
	Verify       bool // Also feed in one piece and compare

	// Keys supplies custom sequences and names. Nil means built-ins only.
	Keys *keybindings.Manager
}

// Run reads all of r, replays it and writes the event dump to w.
func Run(ctx context.Context, r io.Reader, w io.Writer, cfg Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading capture: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = keybindings.New()
	}

	events, err := Events(ctx, data, cfg)
	if err != nil {
		return err
	}

	f := newFormatter(cfg.OutputFormat, w, cfg.Keys)
	for _, ev := range events {
		if err := f.event(ev); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	if err := f.end(len(data), len(events)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if cfg.Verify {
		whole := cfg
		whole.Chunk = 0
		want, err := Events(ctx, data, whole)
		if err != nil {
			return err
		}
		if i := firstDifference(want, events); i >= 0 {
			return fmt.Errorf("%w at event %d (chunk size %d)", ErrChunkMismatch, i, cfg.Chunk)
		}
		log.Debug("replay: %d events independent of chunk size %d", len(events), cfg.Chunk)
	}
	return nil
}

// Events replays data through a fresh parser, cfg.Chunk bytes per Feed, and
// flushes at the end.
func Events(ctx context.Context, data []byte, cfg Config) ([]key.Event, error) {
	p := input.NewParser(input.WithPasteLimit(cfg.PasteLimit))
	if cfg.Keys != nil {
		if err := cfg.Keys.Apply(p); err != nil {
			return nil, err
		}
	}

	chunk := cfg.Chunk
	if chunk <= 0 {
		chunk = max(len(data), 1)
	}

	var events []key.Event
	for part := range slices.Chunk(data, chunk) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events = append(events, p.Feed(part)...)
	}
	return append(events, p.Flush()...), nil
}

// firstDifference returns the index of the first event that differs between
// a and b, or -1 if they are equal.
func firstDifference(a, b []key.Event) int {
	for i := range min(len(a), len(b)) {
		if !sameEvent(a[i], b[i]) {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}

func sameEvent(a, b key.Event) bool {
	return a.Key == b.Key && a.Text == b.Text && a.Truncated == b.Truncated && bytes.Equal(a.Raw, b.Raw)
}

// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and dispatches parsed key events.
// ABOUTME: Owns one Parser, serializes access to it and flushes ambiguous input after an idle timeout.

package input

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/mauromedda/termkeys/pkg/tui/key"
)

const (
	readBufSize = 256

	// DefaultEscapeTimeout is how long a pending prefix (a lone ESC, for
	// instance) may sit idle before it is flushed.
	DefaultEscapeTimeout = 50 * time.Millisecond
)

// StdinBuffer reads from a reader and dispatches parsed key events via onEvent.
type StdinBuffer struct {
	reader  io.Reader
	onEvent func(key.Event)
	timeout time.Duration

	mu     sync.Mutex
	parser *Parser
}

// NewStdinBuffer creates a StdinBuffer that reads from r, resolves bytes with
// p and calls onEvent for each event. A nil p gets a parser over the built-in
// table.
func NewStdinBuffer(r io.Reader, p *Parser, onEvent func(key.Event)) *StdinBuffer {
	if p == nil {
		p = NewParser()
	}
	return &StdinBuffer{
		reader:  r,
		onEvent: onEvent,
		timeout: DefaultEscapeTimeout,
		parser:  p,
	}
}

// SetEscapeTimeout changes the idle flush delay. Call before Start.
// A non-positive d disables idle flushing.
func (b *StdinBuffer) SetEscapeTimeout(d time.Duration) {
	b.timeout = d
}

// Insert registers a sequence with the running parser.
func (b *StdinBuffer) Insert(seq []byte, k key.Key) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parser.Insert(seq, k)
}

// Reset discards whatever the parser has buffered.
func (b *StdinBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.parser.Reset()
}

// Start reads from the underlying reader until ctx is cancelled or the reader returns an error.
// It blocks until completion; call it in a goroutine if non-blocking behavior is needed.
// Buffered input is flushed when the reader ends, not when ctx is cancelled.
func (b *StdinBuffer) Start(ctx context.Context) {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	idle := time.NewTimer(time.Hour)
	idle.Stop()
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-readCh:
			if !ok || result.err != nil {
				b.dispatch(b.flush())
				return
			}
			b.dispatch(b.feed(result.data))
			idle.Stop()
			if b.awaiting() {
				idle.Reset(b.timeout)
			}
		case <-idle.C:
			if b.awaiting() {
				b.dispatch(b.flush())
			}
		}
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed, preventing goroutine leaks on context cancellation.
func (b *StdinBuffer) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			if n == 0 {
				select {
				case ch <- readResult{err: err}:
				case <-done:
				}
			}
			return
		}
	}
}

func (b *StdinBuffer) feed(data []byte) []key.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parser.Feed(data)
}

func (b *StdinBuffer) flush() []key.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parser.Flush()
}

// awaiting reports whether buffered input should be flushed once the idle
// timeout expires. A paste in progress is never cut short by a pause.
func (b *StdinBuffer) awaiting() bool {
	if b.timeout <= 0 {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parser.Mode() != ModePaste && len(b.parser.Pending()) > 0
}

// dispatch delivers events outside the lock so callbacks may call Insert.
func (b *StdinBuffer) dispatch(events []key.Event) {
	for _, ev := range events {
		b.onEvent(ev)
	}
}

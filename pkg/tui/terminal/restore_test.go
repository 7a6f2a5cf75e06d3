// ABOUTME: Tests for RecoverGoroutine panic recovery without os.Exit
// ABOUTME: Verifies goroutine panics are caught and the terminal is restored

package terminal

import (
	"io"
	"strings"
	"sync"
	"testing"
)

// mockTerminal records ExitRawMode calls for testing.
type mockTerminal struct {
	exitCalled bool
	mu         sync.Mutex
}

func (m *mockTerminal) EnterRawMode() error         { return nil }
func (m *mockTerminal) ExitRawMode() error          { m.mu.Lock(); m.exitCalled = true; m.mu.Unlock(); return nil }
func (m *mockTerminal) IsTerminal() bool            { return true }
func (m *mockTerminal) Size() (int, int, error)     { return 80, 24, nil }
func (m *mockTerminal) Read(p []byte) (int, error)  { return 0, io.EOF }
func (m *mockTerminal) Write(p []byte) (int, error) { return len(p), nil }

func TestRecoverGoroutine_CatchesPanic(t *testing.T) {
	t.Parallel()

	mt := &mockTerminal{}
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(mt)
		panic("test goroutine panic")
	}()

	<-done

	mt.mu.Lock()
	defer mt.mu.Unlock()
	if !mt.exitCalled {
		t.Error("expected ExitRawMode to be called on goroutine panic")
	}
}

func TestRecoverGoroutine_NoPanic(t *testing.T) {
	t.Parallel()

	mt := &mockTerminal{}
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(mt)
		// no panic: normal return
	}()

	<-done

	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.exitCalled {
		t.Error("ExitRawMode should not be called when no panic occurs")
	}
}

func TestRecoverGoroutine_DisablesReports(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	_ = vt.EnterRawMode()
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(vt)
		panic("reader panic")
	}()

	<-done

	if vt.IsRawMode() {
		t.Error("expected raw mode to be off after recovery")
	}
	if got := vt.Output(); !strings.Contains(got, "\x1b[?2004l") || !strings.Contains(got, "\x1b[?1000l") {
		t.Errorf("recovery output %q does not disable paste and mouse reports", got)
	}
}

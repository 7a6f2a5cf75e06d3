// ABOUTME: Opaque handle registry mapping string ids to parser instances
// ABOUTME: Each parser carries its own mutex so concurrent requests on one handle serialize

package rpc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/termkeys/pkg/tui/input"
)

// ErrUnknownHandle is returned for a handle that is not registered.
var ErrUnknownHandle = errors.New("unknown handle")

type handleEntry struct {
	mu     sync.Mutex
	parser *input.Parser
}

// Registry owns every parser created over RPC.
type Registry struct {
	mu      sync.Mutex
	next    uint64
	parsers map[string]*handleEntry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]*handleEntry)}
}

// Add registers p and returns its handle.
func (r *Registry) Add(p *input.Parser) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	handle := fmt.Sprintf("p%d", r.next)
	r.parsers[handle] = &handleEntry{parser: p}
	return handle
}

// With runs fn with exclusive access to the parser behind handle.
func (r *Registry) With(handle string, fn func(*input.Parser) error) error {
	r.mu.Lock()
	e, ok := r.parsers[handle]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownHandle, handle)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.parser)
}

// Remove drops handle. Later calls with it fail with ErrUnknownHandle.
func (r *Registry) Remove(handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parsers[handle]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownHandle, handle)
	}
	delete(r.parsers, handle)
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.parsers)
}

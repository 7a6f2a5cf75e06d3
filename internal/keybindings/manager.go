// ABOUTME: Keybindings manager: custom key names, extra sequences and key-to-action lookup
// ABOUTME: Loads a sequence file, inserts its sequences into a parser and hot-reloads on change

package keybindings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/termkeys/internal/config"
	"github.com/mauromedda/termkeys/internal/log"
	"github.com/mauromedda/termkeys/pkg/tui/fuzzy"
	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// ErrUnknownKey is returned for a key name that is neither built in nor
// declared as a custom key.
var ErrUnknownKey = errors.New("unknown key")

// Action names what a key does for the consumer. The parser never sees it.
type Action string

// Inserter accepts sequences. Both *input.Parser and *input.StdinBuffer
// satisfy it.
type Inserter interface {
	Insert(seq []byte, k key.Key) error
}

// Sequence is one resolved entry of a sequence file.
type Sequence struct {
	Bytes  []byte
	Key    key.Key
	Action Action
}

// ConflictInfo describes a byte sequence declared more than once with
// different keys. The last declaration wins.
type ConflictInfo struct {
	Seq  []byte
	Keys []key.Key
}

// Manager provides O(1) key-to-action lookup and the sequences to install.
type Manager struct {
	path string

	mu        sync.RWMutex
	names     map[string]key.Key // lower-cased custom name -> tag
	labels    map[key.Key]string // tag -> custom name as declared
	actions   map[key.Key]Action
	defaults  map[key.Key]Action // survive Reload
	sequences []Sequence
}

// New creates an empty Manager: no custom keys, no extra sequences.
func New() *Manager {
	return &Manager{
		names:    make(map[string]key.Key),
		labels:   make(map[key.Key]string),
		actions:  make(map[key.Key]Action),
		defaults: make(map[key.Key]Action),
	}
}

// Load creates a Manager from the sequence file at path. An empty path
// yields an empty Manager.
func Load(path string) (*Manager, error) {
	m := New()
	m.path = path
	if path == "" {
		return m, nil
	}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewFromFile creates a Manager from an already parsed sequence file.
func NewFromFile(f *config.SequenceFile) (*Manager, error) {
	m := New()
	m.path = f.Path
	if err := m.build(f); err != nil {
		return nil, err
	}
	return m, nil
}

// Path returns the sequence file the Manager was loaded from.
func (m *Manager) Path() string { return m.path }

// Reload re-reads the sequence file. On error the previous state is kept.
func (m *Manager) Reload() error {
	if m.path == "" {
		return nil
	}
	f, err := config.LoadSequenceFile(m.path)
	if err != nil {
		return err
	}
	return m.build(f)
}

// build resolves every name in f and swaps the result in atomically.
func (m *Manager) build(f *config.SequenceFile) error {
	names := make(map[string]key.Key, len(f.CustomKeys))
	labels := make(map[key.Key]string, len(f.CustomKeys))
	for i, name := range f.CustomKeys {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("custom key %d: empty name", i+1)
		}
		if _, err := key.ParseName(name); err == nil {
			return fmt.Errorf("custom key %q shadows a built-in key", name)
		}
		lower := strings.ToLower(name)
		if _, dup := names[lower]; dup {
			return fmt.Errorf("custom key %q declared twice", name)
		}
		k := key.Custom(i + 1)
		if k == key.NotDefined {
			return fmt.Errorf("too many custom keys (max %d)", key.MaxCustom)
		}
		names[lower] = k
		labels[k] = name
	}

	resolve := func(name string) (key.Key, error) {
		return resolveName(name, names, labels)
	}

	actions := make(map[key.Key]Action, len(f.Actions)+len(f.Sequences))
	for name, action := range f.Actions {
		k, err := resolve(name)
		if err != nil {
			return fmt.Errorf("actions: %w", err)
		}
		actions[k] = Action(action)
	}

	seqs := make([]Sequence, 0, len(f.Sequences))
	for _, e := range f.Sequences {
		k, err := resolve(e.Key)
		if err != nil {
			return fmt.Errorf("line %d: %w", e.Line, err)
		}
		b, err := e.Seq()
		if err != nil {
			return fmt.Errorf("line %d: %w", e.Line, err)
		}
		seqs = append(seqs, Sequence{Bytes: b, Key: k, Action: Action(e.Action)})
		if e.Action != "" {
			actions[k] = Action(e.Action)
		}
	}

	m.mu.Lock()
	for k, a := range m.defaults {
		if _, ok := actions[k]; !ok {
			actions[k] = a
		}
	}
	m.names = names
	m.labels = labels
	m.actions = actions
	m.sequences = seqs
	m.mu.Unlock()
	return nil
}

// ResolveKey maps a key name to its tag. Custom names declared in the file
// take precedence; unknown names get a suggestion.
func (m *Manager) ResolveKey(name string) (key.Key, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return resolveName(name, m.names, m.labels)
}

func resolveName(name string, names map[string]key.Key, labels map[key.Key]string) (key.Key, error) {
	if k, ok := names[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	if k, err := key.ParseName(name); err == nil {
		return k, nil
	}

	candidates := key.Names()
	for _, label := range labels {
		candidates = append(candidates, label)
	}
	if s, ok := fuzzy.Suggest(name, candidates); ok {
		return key.NotDefined, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, name, s)
	}
	return key.NotDefined, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

// KeyName returns the declared custom name for k, or k's built-in name.
func (m *Manager) KeyName(k key.Key) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if label, ok := m.labels[k]; ok {
		return label
	}
	return k.String()
}

// ActionFor returns the action bound to k, falling back to the action bound
// to key.Any. It returns "" if neither is bound.
func (m *Manager) ActionFor(k key.Key) Action {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.actions[k]; ok {
		return a
	}
	return m.actions[key.Any]
}

// Bind sets the action for k, overriding the file.
func (m *Manager) Bind(k key.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action == "" {
		delete(m.actions, k)
		return
	}
	m.actions[k] = action
}

// BindDefault binds k to action unless k already has a binding of its own.
// The Any wildcard does not count.
func (m *Manager) BindDefault(k key.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaults[k] = action
	if _, ok := m.actions[k]; !ok {
		m.actions[k] = action
	}
}

// Sequences returns a copy of the loaded sequences in file order.
func (m *Manager) Sequences() []Sequence {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.sequences)
}

// Apply inserts every loaded sequence into target. Sequences removed from
// the file since the last Apply stay installed; a table only grows.
func (m *Manager) Apply(target Inserter) error {
	for _, s := range m.Sequences() {
		if err := target.Insert(s.Bytes, s.Key); err != nil {
			return fmt.Errorf("inserting %s: %w", key.FormatBytes(s.Bytes), err)
		}
	}
	return nil
}

// Conflicts detects byte sequences declared with more than one key.
func (m *Manager) Conflicts() []ConflictInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seqKeys := make(map[string][]key.Key)
	var order []string
	for _, s := range m.sequences {
		id := string(s.Bytes)
		if _, seen := seqKeys[id]; !seen {
			order = append(order, id)
		}
		if !slices.Contains(seqKeys[id], s.Key) {
			seqKeys[id] = append(seqKeys[id], s.Key)
		}
	}

	var conflicts []ConflictInfo
	for _, id := range order {
		if keys := seqKeys[id]; len(keys) > 1 {
			conflicts = append(conflicts, ConflictInfo{Seq: []byte(id), Keys: keys})
		}
	}
	return conflicts
}

// Watch polls the sequence file and re-applies it to target whenever it
// changes, until ctx is done. Reload errors are logged and the previous
// bindings stay in effect.
func (m *Manager) Watch(ctx context.Context, target Inserter, interval time.Duration) {
	if m.path == "" {
		return
	}
	w := config.NewWatcher([]string{m.path}, func([]string) {
		if err := m.Reload(); err != nil {
			log.Warn("reloading %s: %v", m.path, err)
			return
		}
		if err := m.Apply(target); err != nil {
			log.Warn("applying %s: %v", m.path, err)
			return
		}
		log.Info("reloaded %d sequences from %s", len(m.Sequences()), m.path)
	})
	if interval > 0 {
		w.SetInterval(interval)
	}
	w.Run(ctx)
}

// FormatAll returns a markdown table of the loaded sequences for listings.
func (m *Manager) FormatAll() string {
	seqs := m.Sequences()
	if len(seqs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| Sequence | Key | Action |\n|---|---|---|\n")
	for _, s := range seqs {
		action := string(s.Action)
		if action == "" {
			action = string(m.ActionFor(s.Key))
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", key.FormatBytes(s.Bytes), m.KeyName(s.Key), action)
	}
	return b.String()
}

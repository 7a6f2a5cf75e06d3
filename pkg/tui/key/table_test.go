// ABOUTME: Tests for the sequence trie: exact/prefix/no-match classification and longest match.
// ABOUTME: Also covers overwrite semantics, empty insertion and the built-in table contents.

package key

import (
	"bytes"
	"errors"
	"testing"
)

func TestTableMatch(t *testing.T) {
	t.Parallel()

	table := NewTable()

	tests := []struct {
		name     string
		seq      string
		wantKind MatchKind
		wantKey  Key
	}{
		{name: "ctrl+c", seq: "\x03", wantKind: Exact, wantKey: ControlC},
		{name: "lone escape waits", seq: "\x1b", wantKind: Prefix},
		{name: "csi introducer", seq: "\x1b[", wantKind: Prefix},
		{name: "ss3 introducer", seq: "\x1bO", wantKind: Prefix},
		{name: "arrow up", seq: "\x1b[A", wantKind: Exact, wantKey: Up},
		{name: "ss3 down", seq: "\x1bOB", wantKind: Exact, wantKey: Down},
		{name: "f1 ss3 is extendable", seq: "\x1bOP", wantKind: Prefix},
		{name: "shift up", seq: "\x1b[1;2A", wantKind: Exact, wantKey: ShiftUp},
		{name: "control up", seq: "\x1b[1;5A", wantKind: Exact, wantKey: ControlUp},
		{name: "keypad centre ignored", seq: "\x1b[E", wantKind: Exact, wantKey: Ignore},
		{name: "end", seq: "\x1b[F", wantKind: Exact, wantKey: End},
		{name: "f12", seq: "\x1b[24~", wantKind: Exact, wantKey: F12},
		{name: "invalid byte", seq: "\xff", wantKind: NoMatch},
		{name: "diverges after escape", seq: "\x1b\xff", wantKind: NoMatch},
		{name: "diverges inside csi", seq: "\x1b[\xff", wantKind: NoMatch},
		{name: "trailing byte after key", seq: "\x1b[A\x03", wantKind: NoMatch},
		{name: "empty", seq: "", wantKind: NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			k, kind := table.Match([]byte(tt.seq))
			if kind != tt.wantKind {
				t.Fatalf("Match(%q) kind = %v, want %v", tt.seq, kind, tt.wantKind)
			}
			if kind == Exact && k != tt.wantKey {
				t.Errorf("Match(%q) key = %v, want %v", tt.seq, k, tt.wantKey)
			}
		})
	}
}

func TestTableLongestMatch(t *testing.T) {
	t.Parallel()

	table := NewTable()

	tests := []struct {
		name         string
		seq          string
		wantKey      Key
		wantConsumed int
		wantFound    bool
	}{
		{name: "up then more", seq: "\x1b[AB", wantKey: Up, wantConsumed: 3, wantFound: true},
		{name: "ctrl+c before partial csi", seq: "\x03\x1b[", wantKey: ControlC, wantConsumed: 1, wantFound: true},
		{name: "shift up then ctrl+c", seq: "\x1b[1;2A\x03", wantKey: ShiftUp, wantConsumed: 6, wantFound: true},
		{name: "partial csi falls back to escape", seq: "\x1b[1;", wantKey: Escape, wantConsumed: 1, wantFound: true},
		{name: "invalid bytes", seq: "\xff\xfe", wantFound: false},
		{name: "empty", seq: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			k, n, ok := table.LongestMatch([]byte(tt.seq))
			if ok != tt.wantFound {
				t.Fatalf("LongestMatch(%q) found = %v, want %v", tt.seq, ok, tt.wantFound)
			}
			if !ok {
				return
			}
			if k != tt.wantKey || n != tt.wantConsumed {
				t.Errorf("LongestMatch(%q) = %v/%d, want %v/%d", tt.seq, k, n, tt.wantKey, tt.wantConsumed)
			}
		})
	}
}

func TestTableInsertCustom(t *testing.T) {
	t.Parallel()

	table := NewTable()
	goTop := Custom(1)

	if err := table.Insert([]byte("gg"), goTop); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if _, kind := table.Match([]byte("g")); kind != Prefix {
		t.Errorf("Match(g) = %v, want Prefix", kind)
	}
	if k, kind := table.Match([]byte("gg")); kind != Exact || k != goTop {
		t.Errorf("Match(gg) = %v/%v, want Exact/%v", k, kind, goTop)
	}
	if _, kind := table.Match([]byte("ggg")); kind != NoMatch {
		t.Errorf("Match(ggg) = %v, want NoMatch", kind)
	}
}

func TestTableInsertOverwritesExactPath(t *testing.T) {
	t.Parallel()

	table := NewTable()
	before := table.Len()

	if err := table.Insert([]byte("\x1b[A"), Custom(9)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if k, kind := table.Match([]byte("\x1b[A")); kind != Exact || k != Custom(9) {
		t.Errorf("Match = %v/%v, want Exact/Custom9", k, kind)
	}
	if table.Len() != before {
		t.Errorf("Len() = %d after overwrite, want %d", table.Len(), before)
	}
}

func TestTableLongerCustomKeepsShorterBuiltin(t *testing.T) {
	t.Parallel()

	table := NewTable()
	if err := table.Insert([]byte("\x1b[Ax"), Custom(2)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if _, kind := table.Match([]byte("\x1b[A")); kind != Prefix {
		t.Errorf("Match(ESC [ A) = %v, want Prefix once extended", kind)
	}
	k, n, ok := table.LongestMatch([]byte("\x1b[Ay"))
	if !ok || k != Up || n != 3 {
		t.Errorf("LongestMatch = %v/%d/%v, want Up/3/true", k, n, ok)
	}
}

func TestTableInsertEmpty(t *testing.T) {
	t.Parallel()

	table := NewEmptyTable()
	err := table.Insert(nil, ControlA)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("Insert(nil) error = %v, want ErrEmptySequence", err)
	}
	if table.Len() != 0 || table.MaxDepth() != 0 {
		t.Errorf("failed insert mutated table: len=%d depth=%d", table.Len(), table.MaxDepth())
	}
}

func TestTableMaxDepthTracksInsertions(t *testing.T) {
	t.Parallel()

	table := NewTable()
	base := table.MaxDepth()
	if base == 0 || base > 16 {
		t.Fatalf("built-in MaxDepth() = %d, want 1..16", base)
	}

	long := bytes.Repeat([]byte{'z'}, base+5)
	if err := table.Insert(long, Custom(3)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if table.MaxDepth() != base+5 {
		t.Errorf("MaxDepth() = %d, want %d", table.MaxDepth(), base+5)
	}
}

func TestTableEntriesMatchBuiltins(t *testing.T) {
	t.Parallel()

	table := NewTable()
	want := make(map[string]Key)
	for _, e := range builtinSequences {
		want[e.seq] = e.key
	}

	entries := table.Entries()
	if len(entries) != len(want) || table.Len() != len(want) {
		t.Fatalf("Entries() = %d, Len() = %d, want %d", len(entries), table.Len(), len(want))
	}
	for i, e := range entries {
		if want[string(e.Seq)] != e.Key {
			t.Errorf("entry %q = %v, want %v", e.Seq, e.Key, want[string(e.Seq)])
		}
		if i > 0 && bytes.Compare(entries[i-1].Seq, e.Seq) >= 0 {
			t.Errorf("entries not in byte order at %d: %q >= %q", i, entries[i-1].Seq, e.Seq)
		}
	}
}

func TestTableClone(t *testing.T) {
	t.Parallel()

	base := NewTable()
	clone := base.Clone()
	if err := clone.Insert([]byte("jk"), Custom(4)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if _, kind := base.Match([]byte("j")); kind != NoMatch {
		t.Errorf("base table sees clone's entry: Match(j) = %v", kind)
	}
	if clone.Len() != base.Len()+1 {
		t.Errorf("clone Len() = %d, want %d", clone.Len(), base.Len()+1)
	}
}

// ABOUTME: Table is the byte-sequence trie mapping terminal input onto Key tags.
// ABOUTME: Supports runtime insertion, exact/prefix matching and longest-prefix lookup.

package key

import (
	"errors"
	"sort"
)

// ErrEmptySequence is returned when registering a zero-length sequence.
var ErrEmptySequence = errors.New("empty key sequence")

// MatchKind classifies how a byte sequence relates to the table.
type MatchKind int

const (
	NoMatch MatchKind = iota // Input diverges from every registered path
	Prefix                   // Input is consumed and could still be extended
	Exact                    // Input lands on a terminal with nowhere further to go
)

func (m MatchKind) String() string {
	switch m {
	case Prefix:
		return "Prefix"
	case Exact:
		return "Exact"
	default:
		return "NoMatch"
	}
}

type node struct {
	key      Key
	terminal bool
	children map[byte]*node
}

func (n *node) child(b byte) *node {
	if n.children == nil {
		return nil
	}
	return n.children[b]
}

// Table is a prefix tree of registered key sequences. It is not safe for
// concurrent mutation; owners serialize access.
type Table struct {
	root     node
	maxDepth int
	size     int
}

// NewEmptyTable returns a table with no registered sequences.
func NewEmptyTable() *Table {
	return &Table{}
}

// NewTable returns a table preloaded with the built-in sequences.
func NewTable() *Table {
	t := NewEmptyTable()
	for _, e := range builtinSequences {
		// Built-in sequences are never empty.
		_ = t.Insert([]byte(e.seq), e.key)
	}
	return t
}

// Insert registers seq as k. Re-inserting an existing path replaces its key.
// Inserting a longer path never removes a terminal at a shorter depth.
func (t *Table) Insert(seq []byte, k Key) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}

	n := &t.root
	for _, b := range seq {
		next := n.child(b)
		if next == nil {
			if n.children == nil {
				n.children = make(map[byte]*node)
			}
			next = &node{}
			n.children[b] = next
		}
		n = next
	}

	if !n.terminal {
		t.size++
	}
	n.key = k
	n.terminal = true
	t.maxDepth = max(t.maxDepth, len(seq))
	return nil
}

// Match walks seq down the trie in a single pass.
//
// Exact is returned only when seq ends on a terminal node without children.
// A terminal node that can still be extended (a lone ESC, for instance)
// reports Prefix: the caller must wait for more bytes or fall back to
// LongestMatch.
func (t *Table) Match(seq []byte) (Key, MatchKind) {
	if len(seq) == 0 {
		return NotDefined, NoMatch
	}

	n := &t.root
	for _, b := range seq {
		n = n.child(b)
		if n == nil {
			return NotDefined, NoMatch
		}
	}

	if len(n.children) > 0 {
		return NotDefined, Prefix
	}
	if n.terminal {
		return n.key, Exact
	}
	return NotDefined, NoMatch
}

// LongestMatch returns the key of the deepest terminal reached while walking
// seq, and how many bytes of seq it spans.
func (t *Table) LongestMatch(seq []byte) (Key, int, bool) {
	var (
		found    bool
		best     Key
		consumed int
	)

	n := &t.root
	for i, b := range seq {
		n = n.child(b)
		if n == nil {
			break
		}
		if n.terminal {
			found, best, consumed = true, n.key, i+1
		}
	}
	return best, consumed, found
}

// MaxDepth returns the length of the longest registered sequence.
func (t *Table) MaxDepth() int {
	return t.maxDepth
}

// Len returns the number of registered sequences.
func (t *Table) Len() int {
	return t.size
}

// Entry is one registered sequence.
type Entry struct {
	Seq []byte
	Key Key
}

// Entries lists every registered sequence in byte order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.size)
	var walk func(n *node, path []byte)
	walk = func(n *node, path []byte) {
		if n.terminal {
			entries = append(entries, Entry{Seq: append([]byte(nil), path...), Key: n.key})
		}
		next := make([]int, 0, len(n.children))
		for b := range n.children {
			next = append(next, int(b))
		}
		sort.Ints(next)
		for _, b := range next {
			walk(n.children[byte(b)], append(path, byte(b)))
		}
	}
	walk(&t.root, nil)
	return entries
}

// Clone returns a deep copy of t. Parsers that must not see each other's
// custom entries start from clones of a shared base table.
func (t *Table) Clone() *Table {
	c := &Table{maxDepth: t.maxDepth, size: t.size}
	c.root = *cloneNode(&t.root)
	return c
}

func cloneNode(n *node) *node {
	c := &node{key: n.key, terminal: n.terminal}
	if len(n.children) > 0 {
		c.children = make(map[byte]*node, len(n.children))
		for b, child := range n.children {
			c.children[b] = cloneNode(child)
		}
	}
	return c
}

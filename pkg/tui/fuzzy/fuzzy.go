// ABOUTME: Thin wrapper over sahilm/fuzzy for "did you mean" suggestions
// ABOUTME: Ranks candidate names against a misspelled one

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns the candidate closest to name. Separators users tend to
// add ("ctrl-c", "page up") are dropped before matching.
func Suggest(name string, candidates []string) (string, bool) {
	pattern := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '+':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if pattern == "" {
		return "", false
	}
	matches := Find(pattern, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

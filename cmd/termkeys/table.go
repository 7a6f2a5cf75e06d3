// ABOUTME: Markdown listing of the key sequence table rendered with glamour
// ABOUTME: Built-in sequences first, then sequences from the user's sequence file

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// tableMarkdown lists every built-in sequence and the keys' bound actions.
func tableMarkdown(keys *keybindings.Manager) string {
	var b strings.Builder
	b.WriteString("# Key sequences\n\n")
	b.WriteString("| Sequence | Key | Action |\n|---|---|---|\n")
	for _, e := range key.NewTable().Entries() {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", key.FormatBytes(e.Seq), e.Key, keys.ActionFor(e.Key))
	}

	if custom := keys.FormatAll(); custom != "" {
		fmt.Fprintf(&b, "\n## From %s\n\n", keys.Path())
		b.WriteString(custom)
	}
	return b.String()
}

// renderMarkdown renders md for a terminal, or returns it unchanged for
// pipes so the listing stays greppable.
func renderMarkdown(md string, tty bool, wrap int) (string, error) {
	if !tty {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// ABOUTME: Display width and safe rendering of decoded key text for event dumps.
// ABOUTME: Grapheme-aware measurement via uniseg and go-runewidth; control bytes shown in caret notation.

package width

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the number of terminal cells s occupies. Control
// characters count as zero.
func Visible(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if unicode.IsControl(r) {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// Printable renders s so that writing it to a terminal cannot emit control
// sequences: C0 controls and DEL become caret notation (^[ for ESC), other
// control runes become \u escapes.
func Printable(s string) string {
	if isPlainASCII(s) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteByte(byte(r) + '@')
		case r == 0x7f:
			b.WriteString("^?")
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to at most maxWidth cells, ending with an ellipsis when
// anything was cut. Grapheme clusters are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Visible(s) <= maxWidth {
		return s
	}

	const ellipsis = "…"
	budget := maxWidth - runewidth.StringWidth(ellipsis)
	var b strings.Builder
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := graphemeWidth(cluster)
		if w+cw > budget {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// Pad right-pads s with spaces to width cells. Longer strings are returned
// unchanged.
func Pad(s string, width int) string {
	if gap := width - Visible(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

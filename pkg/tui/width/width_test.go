// ABOUTME: Tests for Visible, Printable, Truncate and Pad
// ABOUTME: Covers ASCII, CJK, emoji, combining marks and control characters

package width

import (
	"testing"
)

func TestVisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "combining mark", input: "é", want: 1},
		{name: "control characters", input: "a\x1bb", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Visible(tt.input); got != tt.want {
				t.Errorf("Visible(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "abc", want: "abc"},
		{name: "escape sequence", input: "pa\x1b[Aste", want: "pa^[[Aste"},
		{name: "newline and tab", input: "a\nb\tc", want: "a^Jb^Ic"},
		{name: "delete", input: "\x7f", want: "^?"},
		{name: "c1 control", input: "\u0085", want: `\u0085`},
		{name: "unicode kept", input: "é€", want: "é€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Printable(tt.input); got != tt.want {
				t.Errorf("Printable(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "fits", input: "hello", max: 5, want: "hello"},
		{name: "cut ascii", input: "hello world", max: 6, want: "hello…"},
		{name: "wide runes are not split", input: "你好世界", max: 4, want: "你…"},
		{name: "zero width", input: "abc", max: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if Visible(got) > tt.max {
				t.Errorf("Truncate(%q, %d) is %d cells wide", tt.input, tt.max, Visible(got))
			}
		})
	}
}

func TestPad(t *testing.T) {
	t.Parallel()

	if got := Pad("你", 4); got != "你  " {
		t.Errorf("Pad(你, 4) = %q, want %q", got, "你  ")
	}
	if got := Pad("toolong", 3); got != "toolong" {
		t.Errorf("Pad(toolong, 3) = %q, want unchanged", got)
	}
}

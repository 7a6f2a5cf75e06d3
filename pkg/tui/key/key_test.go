// ABOUTME: Tests for Key names, custom tags, numeric codes and name parsing.
// ABOUTME: Table-driven; covers aliases, ctrl+x spellings and unknown names.

package key

import "testing"

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{NotDefined, "NotDefined"},
		{ControlC, "ControlC"},
		{Escape, "Escape"},
		{F12, "F12"},
		{CPRResponse, "CPRResponse"},
		{BracketedPaste, "BracketedPaste"},
		{Custom(7), "Custom7"},
		{Key(-3), "Key(-3)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEveryBuiltinHasAName(t *testing.T) {
	t.Parallel()

	for k := NotDefined; k < lastBuiltin; k++ {
		name := k.String()
		got, err := ParseName(name)
		if err != nil {
			t.Errorf("ParseName(%q): %v", name, err)
			continue
		}
		if got != k {
			t.Errorf("ParseName(%q) = %v, want %v", name, got, k)
		}
	}
}

func TestCustom(t *testing.T) {
	t.Parallel()

	k := Custom(1)
	if !k.IsCustom() {
		t.Fatalf("Custom(1).IsCustom() = false")
	}
	if k.CustomIndex() != 1 {
		t.Errorf("CustomIndex() = %d, want 1", k.CustomIndex())
	}
	if Custom(1) == Custom(2) {
		t.Error("distinct custom indices produced the same key")
	}
	if Custom(0) != NotDefined || Custom(MaxCustom+1) != NotDefined {
		t.Error("out of range custom index should yield NotDefined")
	}
	if ControlC.IsCustom() {
		t.Error("ControlC reported as custom")
	}
}

func TestCodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []Key{NotDefined, Escape, ShiftDelete, F24, SGRMouseEvent, Custom(42)} {
		got, ok := FromCode(k.Code())
		if !ok || got != k {
			t.Errorf("FromCode(%d) = %v, %v; want %v", k.Code(), got, ok, k)
		}
	}

	if _, ok := FromCode(uint32(lastBuiltin)); ok {
		t.Error("FromCode accepted an unassigned code")
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Key
		wantErr bool
	}{
		{name: "controlc", want: ControlC},
		{name: "  Up ", want: Up},
		{name: "ctrl+a", want: ControlA},
		{name: "Ctrl+Z", want: ControlZ},
		{name: "esc", want: Escape},
		{name: "shift+tab", want: BackTab},
		{name: "pgdown", want: PageDown},
		{name: "custom12", want: Custom(12)},
		{name: "Custom0", wantErr: true},
		{name: "ctrl+1", wantErr: true},
		{name: "", wantErr: true},
		{name: "hyper+q", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseName(%q) = %v, want error", tt.name, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseName(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsReport(t *testing.T) {
	t.Parallel()

	for _, k := range []Key{CPRResponse, Vt100MouseEvent, SGRMouseEvent, BracketedPaste} {
		if !k.IsReport() {
			t.Errorf("%v.IsReport() = false", k)
		}
	}
	if Up.IsReport() || Custom(3).IsReport() {
		t.Error("keypress reported as report")
	}
}

func TestEventString(t *testing.T) {
	t.Parallel()

	ev := Event{Key: NotDefined, Raw: []byte("a"), Text: "a"}
	if got, want := ev.String(), `NotDefined raw="a" text="a"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	paste := Event{Key: BracketedPaste, Raw: []byte("\x1b[200~x"), Text: "x", Truncated: true}
	if got, want := paste.String(), `BracketedPaste raw="\x1b[200~x" text="x" truncated`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := FormatBytes([]byte{0x1b, 0x5b, 0x41}), "1b 5b 41"; got != want {
		t.Errorf("FormatBytes = %q, want %q", got, want)
	}
}

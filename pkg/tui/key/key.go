// ABOUTME: Defines the Key tag identifying every unit the input parser can resolve.
// ABOUTME: Covers control, navigation, function, report and sentinel families plus custom tags.

package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies what a parsed byte unit means. The zero value is NotDefined.
type Key int

const (
	NotDefined Key = iota // Unrecognized unit
	Ignore                // Recognized but intentionally suppressed
	Any                   // Wildcard for bindings; never emitted by the parser

	Escape

	ControlA
	ControlB
	ControlC
	ControlD
	ControlE
	ControlF
	ControlG
	ControlH
	ControlI
	ControlJ
	ControlK
	ControlL
	ControlM
	ControlN
	ControlO
	ControlP
	ControlQ
	ControlR
	ControlS
	ControlT
	ControlU
	ControlV
	ControlW
	ControlX
	ControlY
	ControlZ

	ControlSpace
	ControlBackslash
	ControlSquareClose
	ControlCircumflex
	ControlUnderscore
	ControlLeft
	ControlRight
	ControlUp
	ControlDown

	Up
	Down
	Right
	Left

	ShiftLeft
	ShiftUp
	ShiftDown
	ShiftRight

	Home
	End
	Delete
	ShiftDelete
	ControlDelete
	PageUp
	PageDown
	BackTab
	Insert
	Backspace

	Tab
	Enter

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	CPRResponse     // Cursor position report: ESC [ row ; col R
	Vt100MouseEvent // X10 mouse report: ESC [ M b x y
	SGRMouseEvent   // SGR mouse report: ESC [ < b ; x ; y M|m
	BracketedPaste  // Bracketed paste payload: ESC [ 200 ~ ... ESC [ 201 ~

	lastBuiltin
)

// customBase is the first code reserved for user-defined keys.
const customBase Key = 1 << 16

// MaxCustom is the highest index accepted by Custom.
const MaxCustom = 1<<16 - 1

// Custom returns the tag for the n-th user-defined key (1..MaxCustom).
// Custom tags carry no meaning for the parser; bindings give them one.
func Custom(n int) Key {
	if n < 1 || n > MaxCustom {
		return NotDefined
	}
	return customBase + Key(n)
}

// IsCustom reports whether k was produced by Custom.
func (k Key) IsCustom() bool {
	return k > customBase && k <= customBase+MaxCustom
}

// CustomIndex returns n for a key produced by Custom(n), or 0.
func (k Key) CustomIndex() int {
	if !k.IsCustom() {
		return 0
	}
	return int(k - customBase)
}

// IsReport reports whether k tags a terminal report rather than a keypress.
func (k Key) IsReport() bool {
	switch k {
	case CPRResponse, Vt100MouseEvent, SGRMouseEvent, BracketedPaste:
		return true
	}
	return false
}

// Valid reports whether k is a built-in or custom tag.
func (k Key) Valid() bool {
	return (k >= NotDefined && k < lastBuiltin) || k.IsCustom()
}

// Code returns a stable numeric encoding of k for adapters that cannot carry
// Go values across a process or runtime boundary.
func (k Key) Code() uint32 {
	return uint32(k)
}

// FromCode is the inverse of Code.
func FromCode(code uint32) (Key, bool) {
	k := Key(code)
	if !k.Valid() {
		return NotDefined, false
	}
	return k, true
}

var keyNames = [...]string{
	NotDefined: "NotDefined",
	Ignore:     "Ignore",
	Any:        "Any",
	Escape:     "Escape",

	ControlA: "ControlA",
	ControlB: "ControlB",
	ControlC: "ControlC",
	ControlD: "ControlD",
	ControlE: "ControlE",
	ControlF: "ControlF",
	ControlG: "ControlG",
	ControlH: "ControlH",
	ControlI: "ControlI",
	ControlJ: "ControlJ",
	ControlK: "ControlK",
	ControlL: "ControlL",
	ControlM: "ControlM",
	ControlN: "ControlN",
	ControlO: "ControlO",
	ControlP: "ControlP",
	ControlQ: "ControlQ",
	ControlR: "ControlR",
	ControlS: "ControlS",
	ControlT: "ControlT",
	ControlU: "ControlU",
	ControlV: "ControlV",
	ControlW: "ControlW",
	ControlX: "ControlX",
	ControlY: "ControlY",
	ControlZ: "ControlZ",

	ControlSpace:       "ControlSpace",
	ControlBackslash:   "ControlBackslash",
	ControlSquareClose: "ControlSquareClose",
	ControlCircumflex:  "ControlCircumflex",
	ControlUnderscore:  "ControlUnderscore",
	ControlLeft:        "ControlLeft",
	ControlRight:       "ControlRight",
	ControlUp:          "ControlUp",
	ControlDown:        "ControlDown",

	Up:    "Up",
	Down:  "Down",
	Right: "Right",
	Left:  "Left",

	ShiftLeft:  "ShiftLeft",
	ShiftUp:    "ShiftUp",
	ShiftDown:  "ShiftDown",
	ShiftRight: "ShiftRight",

	Home:          "Home",
	End:           "End",
	Delete:        "Delete",
	ShiftDelete:   "ShiftDelete",
	ControlDelete: "ControlDelete",
	PageUp:        "PageUp",
	PageDown:      "PageDown",
	BackTab:       "BackTab",
	Insert:        "Insert",
	Backspace:     "Backspace",

	Tab:   "Tab",
	Enter: "Enter",

	F1:  "F1",
	F2:  "F2",
	F3:  "F3",
	F4:  "F4",
	F5:  "F5",
	F6:  "F6",
	F7:  "F7",
	F8:  "F8",
	F9:  "F9",
	F10: "F10",
	F11: "F11",
	F12: "F12",
	F13: "F13",
	F14: "F14",
	F15: "F15",
	F16: "F16",
	F17: "F17",
	F18: "F18",
	F19: "F19",
	F20: "F20",
	F21: "F21",
	F22: "F22",
	F23: "F23",
	F24: "F24",

	CPRResponse:     "CPRResponse",
	Vt100MouseEvent: "Vt100MouseEvent",
	SGRMouseEvent:   "SGRMouseEvent",
	BracketedPaste:  "BracketedPaste",
}

// String returns the stable name of k, e.g. "ControlC", "F12" or "Custom7".
func (k Key) String() string {
	if k.IsCustom() {
		return fmt.Sprintf("Custom%d", k.CustomIndex())
	}
	if k >= 0 && int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Names returns the names of all built-in keys in declaration order.
func Names() []string {
	names := make([]string, 0, len(keyNames))
	for _, n := range keyNames {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// aliases maps config-style spellings onto built-in keys.
var aliases = map[string]Key{
	"esc":          Escape,
	"return":       ControlM,
	"cr":           ControlM,
	"lf":           Enter,
	"bs":           Backspace,
	"del":          Delete,
	"ins":          Insert,
	"pgup":         PageUp,
	"pgdown":       PageDown,
	"shift+tab":    BackTab,
	"ctrl+@":       ControlSpace,
	"ctrl+space":   ControlSpace,
	"ctrl+\\":      ControlBackslash,
	"ctrl+]":       ControlSquareClose,
	"ctrl+^":       ControlCircumflex,
	"ctrl+_":       ControlUnderscore,
	"ctrl+up":      ControlUp,
	"ctrl+down":    ControlDown,
	"ctrl+left":    ControlLeft,
	"ctrl+right":   ControlRight,
	"shift+up":     ShiftUp,
	"shift+down":   ShiftDown,
	"shift+left":   ShiftLeft,
	"shift+right":  ShiftRight,
	"ctrl+delete":  ControlDelete,
	"shift+delete": ShiftDelete,
	"cpr":          CPRResponse,
	"paste":        BracketedPaste,
}

var lowerNames = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for i, n := range keyNames {
		if n != "" {
			m[strings.ToLower(n)] = Key(i)
		}
	}
	return m
}()

// ParseName resolves a key name as produced by String, case-insensitively.
// It also accepts "ctrl+x" spellings for control letters, "CustomN" and a few
// common aliases ("esc", "pgup", "shift+tab").
func ParseName(name string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return NotDefined, fmt.Errorf("empty key name")
	}
	if k, ok := lowerNames[s]; ok {
		return k, nil
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return ControlA + Key(rest[0]-'a'), nil
	}
	if rest, ok := strings.CutPrefix(s, "custom"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			if k := Custom(n); k != NotDefined {
				return k, nil
			}
		}
	}
	return NotDefined, fmt.Errorf("unknown key name %q", name)
}

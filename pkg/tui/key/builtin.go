// ABOUTME: Built-in byte sequences for control characters, CSI/SS3 navigation and function keys.
// ABOUTME: Also registers the markers that open mouse-report and bracketed-paste accumulation.

package key

// Markers that open variable-length reports. The parser switches to a
// dedicated scanner when it resolves one of these.
const (
	MarkerX10Mouse   = "\x1b[M"
	MarkerSGRMouse   = "\x1b[<"
	MarkerPasteStart = "\x1b[200~"
	MarkerPasteEnd   = "\x1b[201~"
)

// builtinSequences is inserted in order, so a later entry for the same bytes
// wins. Custom entries are inserted after all of these.
var builtinSequences = []struct {
	seq string
	key Key
}{
	// Control characters
	{"\x1b", Escape},
	{"\x00", ControlSpace},
	{"\x01", ControlA},
	{"\x02", ControlB},
	{"\x03", ControlC},
	{"\x04", ControlD},
	{"\x05", ControlE},
	{"\x06", ControlF},
	{"\x07", ControlG},
	{"\x08", ControlH},
	{"\x09", Tab},
	{"\x0a", Enter},
	{"\x0b", ControlK},
	{"\x0c", ControlL},
	{"\x0d", ControlM},
	{"\x0e", ControlN},
	{"\x0f", ControlO},
	{"\x10", ControlP},
	{"\x11", ControlQ},
	{"\x12", ControlR},
	{"\x13", ControlS},
	{"\x14", ControlT},
	{"\x15", ControlU},
	{"\x16", ControlV},
	{"\x17", ControlW},
	{"\x18", ControlX},
	{"\x19", ControlY},
	{"\x1a", ControlZ},
	{"\x1c", ControlBackslash},
	{"\x1d", ControlSquareClose},
	{"\x1e", ControlCircumflex},
	{"\x1f", ControlUnderscore},
	{"\x7f", Backspace},

	// Arrows, CSI and SS3 (application cursor mode)
	{"\x1b[A", Up},
	{"\x1b[B", Down},
	{"\x1b[C", Right},
	{"\x1b[D", Left},
	{"\x1bOA", Up},
	{"\x1bOB", Down},
	{"\x1bOC", Right},
	{"\x1bOD", Left},

	// Home / End in their many spellings
	{"\x1b[H", Home},
	{"\x1b0H", Home},
	{"\x1bOH", Home},
	{"\x1b[F", End},
	{"\x1b0F", End},
	{"\x1bOF", End},
	{"\x1b[1~", Home},
	{"\x1b[4~", End},
	{"\x1b[7~", Home},
	{"\x1b[8~", End},

	// Editing block
	{"\x1b[3~", Delete},
	{"\x1b[3;2~", ShiftDelete},
	{"\x1b[3;5~", ControlDelete},
	{"\x1b[5~", PageUp},
	{"\x1b[6~", PageDown},
	{"\x1b[2~", Insert},
	{"\x1b[Z", BackTab},

	// Function keys: SS3, Linux console and xterm/vt220 forms
	{"\x1bOP", F1},
	{"\x1bOQ", F2},
	{"\x1bOR", F3},
	{"\x1bOS", F4},
	{"\x1bOPA", F1},
	{"\x1b[[A", F1},
	{"\x1b[[B", F2},
	{"\x1b[[C", F3},
	{"\x1b[[D", F4},
	{"\x1b[[E", F5},
	{"\x1b[11~", F1},
	{"\x1b[12~", F2},
	{"\x1b[13~", F3},
	{"\x1b[14~", F4},
	{"\x1b[15~", F5},
	{"\x1b[17~", F6},
	{"\x1b[18~", F7},
	{"\x1b[19~", F8},
	{"\x1b[20~", F9},
	{"\x1b[21~", F10},
	{"\x1b[23~", F11},
	{"\x1b[24~", F12},
	{"\x1b[25~", F13},
	{"\x1b[26~", F14},
	{"\x1b[28~", F15},
	{"\x1b[29~", F16},
	{"\x1b[31~", F17},
	{"\x1b[32~", F18},
	{"\x1b[33~", F19},
	{"\x1b[34~", F20},

	// Shifted function keys (xterm). ESC [ 1 ; 2 R is left out: it is
	// indistinguishable from a cursor position report for row 1, column 2.
	{"\x1b[1;2P", F13},
	{"\x1b[1;2Q", F14},
	{"\x1b[15;2~", F17},
	{"\x1b[17;2~", F18},
	{"\x1b[18;2~", F19},
	{"\x1b[19;2~", F20},
	{"\x1b[20;2~", F21},
	{"\x1b[21;2~", F22},
	{"\x1b[23;2~", F23},
	{"\x1b[24;2~", F24},

	// Control + arrows
	{"\x1b[1;5A", ControlUp},
	{"\x1b[1;5B", ControlDown},
	{"\x1b[1;5C", ControlRight},
	{"\x1b[1;5D", ControlLeft},
	{"\x1b[5A", ControlUp},
	{"\x1b[5B", ControlDown},
	{"\x1b[5C", ControlRight},
	{"\x1b[5D", ControlLeft},
	{"\x1b[Oc", ControlRight},
	{"\x1b[Od", ControlLeft},

	// Shift + arrows
	{"\x1b[1;2A", ShiftUp},
	{"\x1b[1;2B", ShiftDown},
	{"\x1b[1;2C", ShiftRight},
	{"\x1b[1;2D", ShiftLeft},

	// Keypad centre key (xterm) carries no meaning for line editing.
	{"\x1b[E", Ignore},

	// Report markers
	{MarkerX10Mouse, Vt100MouseEvent},
	{MarkerSGRMouse, SGRMouseEvent},
	{MarkerPasteStart, BracketedPaste},
}

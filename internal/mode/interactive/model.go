// ABOUTME: Bubble Tea model of the live key event viewer
// ABOUTME: Keeps a bounded history of parsed events and renders one styled row per event

package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/pkg/tui/key"
	"github.com/mauromedda/termkeys/pkg/tui/width"
)

// Actions the viewer itself understands. Any other action is only displayed.
const (
	ActionQuit  keybindings.Action = "quit"
	ActionClear keybindings.Action = "clear"
)

const (
	maxHistory = 500

	keyColWidth = 18
	rawColWidth = 26
	chromeLines = 3 // title, blank line, footer
)

type row struct {
	event  key.Event
	name   string
	action keybindings.Action
}

// Model renders parsed events as they arrive.
type Model struct {
	keys   *keybindings.Manager
	styles Styles

	rows   []row
	total  int
	width  int
	height int
	closed bool
}

// NewModel creates a viewer resolving names and actions through keys.
func NewModel(keys *keybindings.Manager) Model {
	if keys == nil {
		keys = keybindings.New()
	}
	return Model{
		keys:   keys,
		styles: DefaultStyles(),
		width:  80,
		height: 24,
	}
}

// Init returns nil; input arrives through the bridge.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles parsed events, resizes and end of input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case KeyEventMsg:
		action := m.keys.ActionFor(msg.Event.Key)
		switch action {
		case ActionQuit:
			return m, tea.Quit
		case ActionClear:
			m.rows = nil
			return m, nil
		}
		m.total++
		m.rows = append(m.rows, row{event: msg.Event, name: m.keys.KeyName(msg.Event.Key), action: action})
		if len(m.rows) > maxHistory {
			m.rows = m.rows[len(m.rows)-maxHistory:]
		}

	case InputClosedMsg:
		m.closed = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the most recent rows that fit the window.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("termkeys: press keys, paste or click"))
	b.WriteString("\n\n")

	visible := max(m.height-chromeLines, 1)
	start := max(len(m.rows)-visible, 0)
	for _, r := range m.rows[start:] {
		b.WriteString(m.renderRow(r))
		b.WriteByte('\n')
	}

	footer := fmt.Sprintf("%d events", m.total)
	if m.closed {
		footer += " · input closed"
	}
	b.WriteString(m.styles.Footer.Render(footer))
	return b.String()
}

func (m Model) renderRow(r row) string {
	name := r.name
	if r.event.Truncated {
		name += "*"
	}
	line := m.styles.keyStyle(r.event.Key).Render(width.Pad(name, keyColWidth)) + " " +
		m.styles.Raw.Render(width.Pad(width.Truncate(key.FormatBytes(r.event.Raw), rawColWidth), rawColWidth))

	// Whatever is left of the line goes to text and action.
	rest := m.width - keyColWidth - rawColWidth - 2
	if r.event.HasText() && rest > 0 {
		text := width.Truncate(width.Printable(r.event.Text), rest)
		line += " " + m.styles.Text.Render(text)
		rest -= width.Visible(text) + 1
	}
	if r.action != "" && rest > 2 {
		line += " " + m.styles.Action.Render(width.Truncate("→ "+string(r.action), rest))
	}
	return line
}

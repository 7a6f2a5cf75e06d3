// ABOUTME: Entry point for the interactive key event viewer
// ABOUTME: Owns raw mode and terminal reports; runs Bubble Tea, the input bridge and the config watcher together

package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/internal/log"
	"github.com/mauromedda/termkeys/pkg/tui/input"
	"github.com/mauromedda/termkeys/pkg/tui/key"
	"github.com/mauromedda/termkeys/pkg/tui/terminal"
)

// ErrNotTerminal is returned when input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Config configures the viewer.
type Config struct {
	Terminal terminal.Terminal
	// Output receives the rendered view. Defaults to Terminal; pass the
	// process's *os.File so Bubble Tea can track window size.
	Output io.Writer

	Keys          *keybindings.Manager
	PasteLimit    int
	EscapeTimeout time.Duration
	Reports       terminal.Reports
	WatchInterval time.Duration
	AltScreen     bool
}

// Run shows parsed events until the quit action fires, the input ends or
// ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	term := cfg.Terminal
	if !term.IsTerminal() {
		return ErrNotTerminal
	}
	out := cfg.Output
	if out == nil {
		out = term
	}
	keys := cfg.Keys
	if keys == nil {
		keys = keybindings.New()
	}
	keys.BindDefault(key.ControlC, ActionQuit)

	parser := input.NewParser(input.WithPasteLimit(cfg.PasteLimit))
	if err := keys.Apply(parser); err != nil {
		return err
	}

	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		_ = terminal.DisableReports(term, cfg.Reports)
		_ = term.ExitRawMode()
	}()
	if err := terminal.EnableReports(term, cfg.Reports); err != nil {
		return fmt.Errorf("enabling terminal reports: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	prog := tea.NewProgram(NewModel(keys), opts...)

	buf := input.NewStdinBuffer(term, parser, EventSender(prog))
	if cfg.EscapeTimeout > 0 {
		buf.SetEscapeTimeout(cfg.EscapeTimeout)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("bubble tea: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		RunInputBridge(gctx, prog, buf)
		return nil
	})
	g.Go(func() error {
		keys.Watch(gctx, buf, cfg.WatchInterval)
		return nil
	})

	if err := terminal.RequestCursorPosition(term); err != nil {
		log.Warn("requesting cursor position: %v", err)
	}

	return g.Wait()
}

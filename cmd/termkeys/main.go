// ABOUTME: CLI entry point for termkeys with terminal crash recovery
// ABOUTME: Parses flags, loads config and sequence files, dispatches to viewer, replay or RPC mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), so no
	// OSC 11 query is sent whose reply would show up as parsed input.
	_ "github.com/mauromedda/termkeys/internal/termfix"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/termkeys/internal/config"
	"github.com/mauromedda/termkeys/internal/keybindings"
	tklog "github.com/mauromedda/termkeys/internal/log"
	"github.com/mauromedda/termkeys/internal/mode/interactive"
	"github.com/mauromedda/termkeys/internal/mode/replay"
	"github.com/mauromedda/termkeys/internal/mode/rpc"
	"github.com/mauromedda/termkeys/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("termkeys %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// env is what run needs from the process, replaceable in tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	cwd    string
}

func run(ctx context.Context, args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if args.configDir != "" {
		if err := os.Setenv(config.EnvConfigDir, args.configDir); err != nil {
			return fmt.Errorf("setting config dir: %w", err)
		}
	}

	if !args.rpc && args.replay == "" && !args.table && !args.explain {
		return runInteractive(ctx, args, cwd)
	}
	return runBatch(ctx, args, env{stdin: os.Stdin, stdout: os.Stdout, cwd: cwd})
}

// setup loads settings, configures logging and loads the sequence file.
func setup(args cliArgs, cwd string) (*config.Settings, *keybindings.Manager, func(), error) {
	settings, err := config.Load(cwd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	closeLog, err := setupLogging(settings, args.debug)
	if err != nil {
		return nil, nil, nil, err
	}

	path := config.SequencesPath(settings, cwd)
	keys, err := keybindings.Load(path)
	if err != nil {
		closeLog()
		return nil, nil, nil, fmt.Errorf("loading sequences: %w", err)
	}
	for _, c := range keys.Conflicts() {
		tklog.Warn("%s: sequence %q declared for %v; the last one wins", path, c.Seq, c.Keys)
	}
	if path != "" {
		tklog.Debug("loaded %d sequences from %s", len(keys.Sequences()), path)
	}
	return settings, keys, closeLog, nil
}

func setupLogging(settings *config.Settings, debug bool) (func(), error) {
	level, err := tklog.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	if debug {
		level = tklog.LevelDebug
	}
	tklog.SetLevel(level)

	if settings.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	tklog.SetOutput(f)
	return func() {
		tklog.SetOutput(nil)
		_ = f.Close()
	}, nil
}

// runBatch serves every mode that does not own the terminal.
func runBatch(ctx context.Context, args cliArgs, e env) error {
	settings, keys, closeLog, err := setup(args, e.cwd)
	if err != nil {
		return err
	}
	defer closeLog()

	switch {
	case args.explain:
		_, err := io.WriteString(e.stdout, config.Explain(settings, e.cwd))
		return err

	case args.table:
		tty := false
		if f, ok := e.stdout.(*os.File); ok {
			tty = term.IsTerminal(int(f.Fd()))
		}
		out, err := renderMarkdown(tableMarkdown(keys), tty, 100)
		if err != nil {
			return err
		}
		_, err = io.WriteString(e.stdout, out)
		return err

	case args.replay != "":
		r := e.stdin
		if args.replay != "-" {
			f, err := os.Open(args.replay)
			if err != nil {
				return fmt.Errorf("opening capture: %w", err)
			}
			defer f.Close()
			r = f
		}
		return replay.Run(ctx, r, e.stdout, replay.Config{
			OutputFormat: args.format,
			Chunk:        args.chunk,
			PasteLimit:   settings.PasteLimit,
			Verify:       args.verify,
			Keys:         keys,
		})

	default:
		return runRPC(ctx, keys, settings, e)
	}
}

// runRPC serves requests until stdin closes or ctx is cancelled. The
// sequence file is reloaded on change; parsers created afterwards see it.
func runRPC(ctx context.Context, keys *keybindings.Manager, settings *config.Settings, e env) error {
	router := rpc.NewRouter()
	rpc.RegisterHandlers(router, &rpc.Deps{Keys: keys, PasteLimit: settings.PasteLimit})
	server := rpc.NewServer(e.stdin, e.stdout, router.Handle)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A blocked stdin read cannot be interrupted, so the server runs
	// outside the group and the group only waits for its result.
	served := make(chan error, 1)
	go func() { served <- server.Run() }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		select {
		case err := <-served:
			return err
		case <-gctx.Done():
			return nil
		}
	})
	if path := keys.Path(); path != "" {
		w := config.NewWatcher([]string{path}, func([]string) {
			if err := keys.Reload(); err != nil {
				tklog.Warn("reloading %s: %v", path, err)
			}
		})
		g.Go(func() error {
			w.Run(gctx)
			return nil
		})
	}
	return g.Wait()
}

func runInteractive(ctx context.Context, args cliArgs, cwd string) error {
	settings, keys, closeLog, err := setup(args, cwd)
	if err != nil {
		return err
	}
	defer closeLog()

	tty := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(tty)

	err = interactive.Run(ctx, interactive.Config{
		Terminal:      tty,
		Output:        os.Stdout,
		Keys:          keys,
		PasteLimit:    settings.PasteLimit,
		EscapeTimeout: settings.EscapeTimeout(),
		Reports:       terminal.Reports{Paste: settings.PasteEnabled(), Mouse: settings.Mouse || args.mouse},
		AltScreen:     true,
	})
	if errors.Is(err, interactive.ErrNotTerminal) {
		return fmt.Errorf("%w; use -replay - to parse piped input", err)
	}
	return err
}

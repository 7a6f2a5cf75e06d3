// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -rpc, -replay, -chunk, -format, -verify, -table, -explain, -debug, -config, -version

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	rpc       bool
	replay    string
	chunk     int
	format    string
	verify    bool
	table     bool
	explain   bool
	debug     bool
	configDir string
	mouse     bool
	version   bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("termkeys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&args.rpc, "rpc", false, "Serve the parser over JSONL on stdin/stdout")
	fs.StringVar(&args.replay, "replay", "", "Replay a captured byte file (- for stdin) and dump events")
	fs.IntVar(&args.chunk, "chunk", 0, "Bytes per feed when replaying (0 = whole file)")
	fs.StringVar(&args.format, "format", "text", "Replay output format: text or jsonl")
	fs.BoolVar(&args.verify, "verify", false, "Fail if the replay depends on the chunk size")
	fs.BoolVar(&args.table, "table", false, "List the key sequence table and exit")
	fs.BoolVar(&args.explain, "explain", false, "Show the effective configuration and exit")
	fs.BoolVar(&args.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&args.configDir, "config", "", "Global config directory (default ~/.termkeys)")
	fs.BoolVar(&args.mouse, "mouse", false, "Request mouse reports in the viewer")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 0 {
		return cliArgs{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if args.chunk < 0 {
		return cliArgs{}, fmt.Errorf("-chunk must not be negative")
	}
	if args.format != "text" && args.format != "jsonl" {
		return cliArgs{}, fmt.Errorf("-format must be text or jsonl, got %q", args.format)
	}
	if args.rpc && args.replay != "" {
		return cliArgs{}, fmt.Errorf("-rpc and -replay are mutually exclusive")
	}
	return args, nil
}

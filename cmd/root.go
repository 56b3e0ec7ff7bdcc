// Package cmd wires up the CLI and dispatches to the chat core.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"pchat/config"
	"pchat/internal/core"
	"pchat/internal/errors"
	"pchat/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X pchat/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the appropriate pchat mode.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{}
	fs := flag.NewFlagSet("pchat", flag.ContinueOnError)
	fs.BoolVarP(&cfg.Listen, "listen", "l", false, "Wait for one peer instead of dialing out")
	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(args) == 0 {
		fs.Usage()
		return errors.Usage("missing arguments")
	}

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		fs.Usage()
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return err
	}

	cfg.Interactive = term.IsTerminal(int(os.Stdout.Fd()))

	// ── build and run ────────────────────────────────────────────
	logger := util.NewLogger(util.LogNormal)
	return core.Build(cfg, logger).Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional fills cfg from the non-flag arguments.  Anything
// after the optional display name is ignored.
func parsePositional(cfg *config.Config, args []string) error {
	if cfg.Listen {
		if len(args) < 1 {
			return errors.Usage("please specify a port to listen on")
		}
		port, err := config.ParsePort(args[0])
		if err != nil {
			return errors.Usage("%v", err)
		}
		cfg.Port = port
		if len(args) >= 2 {
			cfg.Name = args[1]
		}
		return nil
	}

	if len(args) < 2 {
		return errors.Usage("please specify a host and port")
	}
	cfg.Host = args[0]
	port, err := config.ParsePort(args[1])
	if err != nil {
		return errors.Usage("%v", err)
	}
	cfg.Port = port
	if len(args) >= 3 {
		cfg.Name = args[2]
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `pchat – peer-to-peer console messenger v%s

One binary, two roles: wait for a peer or dial one, then type.  Every
line you enter is sent as "<name>: <line>"; everything the peer sends
is printed under a [remote] tag.

Usage:
  pchat --listen <port> [displayName]     Wait for one peer
  pchat <host> <port> [displayName]       Connect to a waiting peer

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprint(os.Stderr, `
displayName defaults to "server" when listening and "host" when
connecting.

Examples:
  pchat --listen 9000 alice               Accept a chat on port 9000
  pchat 192.0.2.10 9000 bob               Chat with the host above
`)
}

// Package config defines the runtime configuration for pchat and
// provides port parsing and validation helpers.
package config

import (
	"fmt"
	"strconv"
)

// Config holds every tuneable for a single pchat run.
type Config struct {
	// ── Mode ─────────────────────────────────────────────────────────
	Listen bool   // --listen: accept one peer instead of dialing out
	Host   string // dial mode only: peer to connect to
	Port   int    // listen port or peer port

	// ── Identity ─────────────────────────────────────────────────────
	Name string // display name prefixed to outgoing lines

	// ── Output ───────────────────────────────────────────────────────
	Interactive bool // stdout is a terminal; enables colored tags
}

// ── Port helpers ─────────────────────────────────────────────────────

// ParsePort converts a command-line port argument.
func ParsePort(spec string) (int, error) {
	port, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", spec)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range 1-65535", port)
	}
	return port, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent and
// fills in the default display name for the selected mode.
func (c *Config) Validate() error {
	if c.Port == 0 {
		if c.Listen {
			return fmt.Errorf("listen mode requires a port")
		}
		return fmt.Errorf("destination port is required")
	}
	if !c.Listen && c.Host == "" {
		return fmt.Errorf("hostname is required")
	}

	if c.Name == "" {
		if c.Listen {
			c.Name = DefaultServerName
		} else {
			c.Name = DefaultClientName
		}
	}
	return nil
}

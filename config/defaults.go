package config

// ── Default values ───────────────────────────────────────────────────
//
// All defaults live here so they are easy to audit and reuse across
// argument parsing and tests.

const (
	// DefaultServerName is the display name in listen mode when the
	// user gives none.
	DefaultServerName = "server"

	// DefaultClientName is the display name in dial mode when the
	// user gives none.
	DefaultClientName = "host"
)

//go:build !unix

package transport

import "syscall"

// reuseAddr is a no-op on platforms where SO_REUSEADDR is unavailable
// or already the listener default.
func reuseAddr(network, address string, c syscall.RawConn) error { return nil }

// Package transport establishes the TCP connections a session runs
// over.  It handles the "how" of connection setup — address
// resolution, candidate walking, socket options — independent of what
// happens over the connection (which is the session layer's job).
package transport

import (
	"context"
	"net"
)

// Dialer opens outbound connections.  It exists so higher layers can
// swap the real TCP dialer for a test double.
type Dialer interface {
	// Dial establishes a connection to host on port.
	Dial(ctx context.Context, host string, port int) (net.Conn, error)
}

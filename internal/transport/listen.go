package transport

import (
	"context"
	"fmt"
	"net"

	"pchat/internal/errors"
)

// Listen opens an IPv4 TCP listener on all interfaces at port, with
// SO_REUSEADDR set so a restart can rebind while the previous socket
// lingers in TIME_WAIT.
func Listen(ctx context.Context, port int) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	addr := fmt.Sprintf(":%d", port)
	ln, err := lc.Listen(ctx, "tcp4", addr)
	if err != nil {
		return nil, errors.Wrap("listen", addr, err)
	}
	return ln, nil
}

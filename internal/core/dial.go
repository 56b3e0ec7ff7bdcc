package core

import (
	"context"
	"io"

	"pchat/internal/console"
	"pchat/internal/metrics"
	"pchat/internal/session"
	"pchat/internal/transport"
	"pchat/util"
)

// DialMode connects out to a listening peer and chats over the
// resulting connection — the client mode.
type DialMode struct {
	Dialer  transport.Dialer
	Host    string
	Port    int
	Name    string
	Printer *console.Printer
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Stdin defaults to os.Stdin when nil.  Override in tests for
	// deterministic input.
	Stdin io.Reader
}

// Run dials the peer and runs the session over the connection.
func (m *DialMode) Run(ctx context.Context) error {
	m.Logger.Verbose("connecting to %s", util.FormatAddr(m.Host, m.Port))

	conn, err := m.Dialer.Dial(ctx, m.Host, m.Port)
	if err != nil {
		// A dial aborted by cancellation is a local stop request,
		// not a connection failure.
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	m.Printer.Noticef("Connected to %s:%d", m.Host, m.Port)
	m.Logger.Verbose("local side is %s", conn.LocalAddr())

	sess := &session.Session{
		Conn:    conn,
		Name:    m.Name,
		Stdin:   m.Stdin,
		Printer: m.Printer,
		Logger:  m.Logger,
		Metrics: m.Metrics,
	}
	return sess.Run(ctx)
}

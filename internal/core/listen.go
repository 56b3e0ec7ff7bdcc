package core

import (
	"context"
	"io"

	"pchat/internal/console"
	"pchat/internal/errors"
	"pchat/internal/metrics"
	"pchat/internal/session"
	"pchat/internal/transport"
	"pchat/util"
)

// ListenMode accepts a single inbound connection and chats over it.
// The listener closes as soon as a peer is accepted; this is a
// one-conversation tool, not a server.
type ListenMode struct {
	Port    int
	Name    string
	Printer *console.Printer
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Stdin defaults to os.Stdin when nil.  Override in tests for
	// deterministic input.
	Stdin io.Reader
}

// Run binds the port, waits for one peer, then runs the session over
// the accepted connection.
func (m *ListenMode) Run(ctx context.Context) error {
	ln, err := transport.Listen(ctx, m.Port)
	if err != nil {
		return err
	}
	defer ln.Close()

	m.Printer.Noticef("Listening on port %d ... waiting for a connection", m.Port)

	// Unblock Accept when the context expires.
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	conn, err := ln.Accept()
	if err != nil {
		select {
		case <-ctx.Done():
			return nil
		default:
			return errors.Wrap("accept", ln.Addr().String(), err)
		}
	}
	ln.Close() // single-conversation: no further peers

	m.Printer.Noticef("Client connected")
	m.Logger.Verbose("connection from %s", conn.RemoteAddr())

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

// Package session runs a duplex chat exchange over one established
// connection: an inbound worker copying socket chunks to the console
// and an outbound worker copying console lines to the socket, joined
// by a controller that tears both down on the first termination event.
//
// Sessions decouple the exchange from concrete I/O sources — the
// workers don't care whether input comes from os.Stdin or a test
// pipe, and all console output goes through an injected Printer.
package session

import (
	"context"
	"io"
	"net"
	"os"
	"sync"
	"sync/atomic"

	"pchat/internal/console"
	"pchat/internal/metrics"
	"pchat/util"
)

// Session encapsulates the runtime state of a single peer connection.
// Exactly one Session exists per process run; exactly one connection
// backs it.  Printer and Logger must be set.  A nil Stdin means
// os.Stdin.
type Session struct {
	Conn    net.Conn
	Name    string
	Stdin   io.Reader
	Printer *console.Printer
	Logger  *util.Logger
	Metrics *metrics.Collector

	alive  atomic.Bool
	cancel context.CancelFunc
}

// Alive reports whether the session is still running.  It flips false
// exactly once, logically, on the first termination event; setting it
// again is harmless.
func (s *Session) Alive() bool { return s.alive.Load() }

// close signals termination from a worker.  Safe to call from both
// workers and concurrently with the controller.
func (s *Session) close() {
	s.alive.Store(false)
	s.cancel()
}

func (s *Session) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

// Run drives the session to completion: it launches the two workers,
// blocks until either one signals termination (peer close, input
// exhausted, I/O failure) or ctx is cancelled, then closes the
// connection exactly once and waits for both workers to stop.
//
// I/O failures inside the workers are reported where they occur and
// drive shutdown instead of propagating, so Run returns nil once the
// connection is up.  Run must be called exactly once.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.cancel = cancel
	s.alive.Store(true)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.receiveLoop()
	}()
	go func() {
		defer wg.Done()
		s.sendLoop(ctx)
	}()

	<-ctx.Done()

	// Closing the connection is what unblocks a worker stuck in a
	// socket read or write.  The controller is the only closer, and
	// it closes after the done signal exactly once.
	s.alive.Store(false)
	s.Conn.Close()
	wg.Wait()

	snap := s.Metrics.Snapshot()
	s.Logger.Verbose("session closed: %d lines out (%d bytes), %d chunks in (%d bytes)",
		snap.LinesSent, snap.BytesSent, snap.ChunksReceived, snap.BytesReceived)

	s.Printer.Noticef("Exiting.")
	return nil
}

// Package errors provides domain-specific error types for pchat.
//
// These types carry structured context (operation, address) that helps
// callers decide how to handle failures and provides better diagnostics
// than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// ── Structured error types ───────────────────────────────────────────

// NetworkError represents a failure in a network operation.
type NetworkError struct {
	Op   string // operation: "resolve", "connect", "listen", "accept", "read", "write"
	Addr string // network address involved
	Err  error  // underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UsageError represents an invalid command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError for op against addr.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{Op: op, Addr: addr, Err: err}
}

// Usage creates a UsageError.
func Usage(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ── Classification helpers ───────────────────────────────────────────

// IsInterrupted reports whether a read or write failed because a
// signal arrived mid-call.  Such calls are retried in place rather
// than treated as failures.
func IsInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}

// IsClosed reports whether err resulted from an operation on a
// connection that this process already closed.  During shutdown the
// controller closes the socket to unblock the workers; the errors
// those aborted calls return are expected and carry no information.
// A clean end-of-stream (io.EOF) is NOT a closed error: it means the
// peer hung up and the caller reports that distinctly.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use pchat/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

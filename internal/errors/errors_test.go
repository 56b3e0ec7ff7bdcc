package errors

import (
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"
)

func TestNetworkError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  NetworkError
		want string
	}{
		{
			name: "connect",
			err:  NetworkError{Op: "connect", Addr: "example.com:9000", Err: io.EOF},
			want: "connect example.com:9000: EOF",
		},
		{
			name: "listen",
			err:  NetworkError{Op: "listen", Addr: ":8080", Err: fmt.Errorf("bind failed")},
			want: "listen :8080: bind failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	err := &NetworkError{Op: "connect", Addr: "x", Err: io.EOF}
	if !Is(err, io.EOF) {
		t.Error("should unwrap to io.EOF")
	}
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := Wrap("connect", "10.0.0.1:9000", inner)

	if err.Op != "connect" || err.Addr != "10.0.0.1:9000" {
		t.Errorf("wrong fields: Op=%q Addr=%q", err.Op, err.Addr)
	}
	if !Is(err, inner) {
		t.Error("should unwrap to inner error")
	}
}

func TestUsage(t *testing.T) {
	err := Usage("unknown port %q", "abc")
	want := `unknown port "abc"`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var ue *UsageError
	if !As(error(err), &ue) {
		t.Error("As should match *UsageError")
	}
}

func TestIsInterrupted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bare EINTR", syscall.EINTR, true},
		{"wrapped EINTR", fmt.Errorf("read: %w", syscall.EINTR), true},
		{"op error EINTR", &net.OpError{Op: "read", Net: "tcp", Err: syscall.EINTR}, true},
		{"other errno", syscall.ECONNRESET, false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInterrupted(tt.err); got != tt.want {
				t.Errorf("IsInterrupted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"net.ErrClosed", net.ErrClosed, true},
		{"wrapped ErrClosed", fmt.Errorf("read: %w", net.ErrClosed), true},
		{"op error ErrClosed", &net.OpError{Op: "read", Net: "tcp", Err: net.ErrClosed}, true},
		{"closed pipe", io.ErrClosedPipe, true},
		{"EOF is not closed", io.EOF, false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClosed(tt.err); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Package metrics provides lightweight, lock-free counters for
// tracking runtime statistics of a pchat session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a pchat session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	linesSent   atomic.Int64
	bytesSent   atomic.Int64
	chunksIn    atomic.Int64
	bytesIn     atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Outbound metrics ─────────────────────────────────────────────────

// LineSent records one outgoing message of n payload bytes.
func (c *Collector) LineSent(n int64) {
	if c == nil {
		return
	}
	c.linesSent.Add(1)
	c.bytesSent.Add(n)
}

// LinesSent returns the total number of messages sent.
func (c *Collector) LinesSent() int64 {
	if c == nil {
		return 0
	}
	return c.linesSent.Load()
}

// TotalBytesOut returns total payload bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesSent.Load()
}

// ── Inbound metrics ──────────────────────────────────────────────────

// ChunkReceived records one inbound read of n bytes.
func (c *Collector) ChunkReceived(n int64) {
	if c == nil {
		return
	}
	c.chunksIn.Add(1)
	c.bytesIn.Add(n)
}

// ChunksReceived returns the total number of inbound reads.
func (c *Collector) ChunksReceived() int64 {
	if c == nil {
		return 0
	}
	return c.chunksIn.Load()
}

// TotalBytesIn returns total bytes received.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	LinesSent        int64  `json:"lines_sent"`
	BytesSent        int64  `json:"bytes_sent"`
	ChunksReceived   int64  `json:"chunks_received"`
	BytesReceived    int64  `json:"bytes_received"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:         time.Since(c.startTime).Truncate(time.Second).String(),
		LinesSent:      c.linesSent.Load(),
		BytesSent:      c.bytesSent.Load(),
		ChunksReceived: c.chunksIn.Load(),
		BytesReceived:  c.bytesIn.Load(),
		ErrorsTotal:    c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}

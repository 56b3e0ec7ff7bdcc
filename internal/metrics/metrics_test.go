package metrics

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollector_Lines(t *testing.T) {
	c := New()

	c.LineSent(20)
	c.LineSent(15)
	if c.LinesSent() != 2 {
		t.Errorf("lines = %d, want 2", c.LinesSent())
	}
	if c.TotalBytesOut() != 35 {
		t.Errorf("bytes out = %d, want 35", c.TotalBytesOut())
	}
}

func TestCollector_Chunks(t *testing.T) {
	c := New()

	c.ChunkReceived(1023)
	c.ChunkReceived(100)

	if c.ChunksReceived() != 2 {
		t.Errorf("chunks = %d, want 2", c.ChunksReceived())
	}
	if c.TotalBytesIn() != 1123 {
		t.Errorf("bytes in = %d, want 1123", c.TotalBytesIn())
	}
}

func TestCollector_Errors(t *testing.T) {
	c := New()

	c.RecordError("first error")
	c.RecordError("second error")

	if c.ErrorCount() != 2 {
		t.Errorf("errors = %d, want 2", c.ErrorCount())
	}

	snap := c.Snapshot()
	if snap.LastErrorMessage != "second error" {
		t.Errorf("last error = %q, want %q", snap.LastErrorMessage, "second error")
	}
	if snap.LastError == "" {
		t.Error("expected non-empty last error timestamp")
	}
}

func TestCollector_Snapshot(t *testing.T) {
	c := New()
	c.LineSent(50)
	c.ChunkReceived(100)
	c.RecordError("test")

	snap := c.Snapshot()
	if snap.LinesSent != 1 {
		t.Errorf("snap lines = %d", snap.LinesSent)
	}
	if snap.BytesSent != 50 {
		t.Errorf("snap bytes sent = %d", snap.BytesSent)
	}
	if snap.ChunksReceived != 1 {
		t.Errorf("snap chunks = %d", snap.ChunksReceived)
	}
	if snap.BytesReceived != 100 {
		t.Errorf("snap bytes in = %d", snap.BytesReceived)
	}
	if snap.ErrorsTotal != 1 {
		t.Errorf("snap errors = %d", snap.ErrorsTotal)
	}
	if snap.LastErrorMessage != "test" {
		t.Errorf("snap error msg = %q", snap.LastErrorMessage)
	}
}

func TestCollector_JSON(t *testing.T) {
	c := New()
	c.LineSent(42)

	raw := c.JSON()
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if snap.LinesSent != 1 {
		t.Errorf("JSON lines = %d", snap.LinesSent)
	}
	if snap.BytesSent != 42 {
		t.Errorf("JSON bytes sent = %d", snap.BytesSent)
	}
}

func TestCollector_Concurrent(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.LineSent(1)
				c.ChunkReceived(1)
			}
		}()
	}
	wg.Wait()

	if c.LinesSent() != 1000 {
		t.Errorf("lines = %d, want 1000", c.LinesSent())
	}
	if c.ChunksReceived() != 1000 {
		t.Errorf("chunks = %d, want 1000", c.ChunksReceived())
	}
}

func TestNilCollector_NoOps(t *testing.T) {
	var c *Collector

	// None of these should panic.
	c.LineSent(100)
	c.ChunkReceived(100)
	c.RecordError("test")

	if c.LinesSent() != 0 {
		t.Error("nil collector should return 0")
	}
	if c.TotalBytesIn() != 0 {
		t.Error("nil collector should return 0")
	}
	if c.ErrorCount() != 0 {
		t.Error("nil collector should return 0")
	}

	snap := c.Snapshot()
	if snap.LinesSent != 0 {
		t.Error("nil snapshot should be zero")
	}

	j := c.JSON()
	if j == "" {
		t.Error("nil JSON should return valid JSON")
	}
}

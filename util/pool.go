package util

import "sync"

const (
	// ChunkBufSize is the size of a pooled receive buffer.
	ChunkBufSize = 1024

	// MaxChunk is the largest number of bytes a single receive may
	// return.
	MaxChunk = ChunkBufSize - 1
)

// BufPool provides reusable chunk buffers for the receive loop,
// reducing GC pressure on the hot path.
var BufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, ChunkBufSize)
		return &buf
	},
}

// GetBuf retrieves a buffer from the pool.  Callers must return it
// with [PutBuf] when finished.
func GetBuf() *[]byte {
	return BufPool.Get().(*[]byte)
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	BufPool.Put(buf)
}

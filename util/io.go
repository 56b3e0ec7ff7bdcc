package util

import (
	"errors"
	"io"
	"syscall"
)

// WriteFull writes all of p to w. A single Write on a byte-stream
// transport may transmit fewer bytes than requested; that is normal,
// not an error, and the remainder is retried until the payload is
// fully sent. Writes interrupted by a signal are retried in place.
// It returns the number of bytes written and the first hard error.
func WriteFull(w io.Writer, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := w.Write(p[total:])
		total += n
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

package session

import (
	"io"

	"pchat/internal/errors"
	"pchat/util"
)

// receiveLoop copies socket chunks to the console until the peer
// closes, a read fails hard, or the controller closes the connection.
func (s *Session) receiveLoop() {
	defer s.close()

	buf := util.GetBuf()
	defer util.PutBuf(buf)

	for {
		n, err := s.Conn.Read((*buf)[:util.MaxChunk])
		if n > 0 {
			s.Printer.Remote(string((*buf)[:n]))
			s.Metrics.ChunkReceived(int64(n))
		}
		if err == nil {
			continue
		}

		switch {
		case errors.IsInterrupted(err):
			continue
		case errors.Is(err, io.EOF):
			// Orderly close by the peer.  During local shutdown an
			// EOF can race the controller's own close; the notice is
			// only for closes the peer initiated.
			if s.Alive() {
				s.Logger.Warn("Connection closed by peer")
			}
		case errors.IsClosed(err):
			// Controller closed the connection under us.
		default:
			s.Logger.Error("read: %v", err)
			s.Metrics.RecordError(err.Error())
		}
		return
	}
}

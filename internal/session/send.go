package session

import (
	"bufio"
	"context"

	"pchat/internal/errors"
	"pchat/util"
)

// maxLine bounds a single input line.  Longer lines are an input
// error and tear the session down.
const maxLine = 1 << 20

// sendLoop copies console lines to the socket until input is
// exhausted, a write fails hard, or the session is cancelled.
//
// A blocking read of local input cannot be cancelled from outside, so
// the scanner runs in its own goroutine feeding a channel.  The loop
// itself always stays responsive to ctx; at worst the scanner
// goroutine stays parked on its final read until the process exits.
func (s *Session) sendLoop(ctx context.Context) {
	defer s.close()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.stdin())
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			scanErr <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				// End of local input.
				select {
				case err := <-scanErr:
					s.Logger.Error("stdin: %v", err)
					s.Metrics.RecordError(err.Error())
				default:
				}
				return
			}
			if !s.send(line) {
				return
			}
		}
	}
}

// send transmits one message, echoing it locally first.  It reports
// whether the loop should continue.
func (s *Session) send(line string) bool {
	payload := s.Name + ": " + line + "\n"
	s.Printer.Echo(s.Name, line)

	n, err := util.WriteFull(s.Conn, []byte(payload))
	if err != nil {
		if !errors.IsClosed(err) {
			s.Logger.Error("write: %v", err)
			s.Metrics.RecordError(err.Error())
		}
		return false
	}
	s.Metrics.LineSent(int64(n))
	return true
}

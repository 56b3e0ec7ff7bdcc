// Package console formats user-facing session output.
//
// Everything the user reads (remote messages, local echo, lifecycle
// notices) flows through a Printer so that concurrent workers never
// interleave partial lines.  Diagnostics go through util.Logger to
// stderr and never through the Printer.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// Printer serializes user-facing output to a single writer.
type Printer struct {
	mu        sync.Mutex
	out       io.Writer
	remoteTag string
	youTag    string
}

// NewPrinter returns a Printer writing to out.  When colorize is set
// the message tags are rendered with ANSI colors; leave it unset when
// out is not a terminal.
func NewPrinter(out io.Writer, colorize bool) *Printer {
	p := &Printer{out: out, remoteTag: "[remote]", youTag: "[you]"}
	if colorize {
		p.remoteTag = color.New(color.FgCyan).Render("[remote]")
		p.youTag = color.New(color.FgGreen).Render("[you]")
	}
	return p
}

// Remote prints a chunk received from the peer.  The chunk is printed
// as-is after the remote tag and terminated with exactly one newline
// whether or not the peer included one.
func (p *Printer) Remote(chunk string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if strings.HasSuffix(chunk, "\n") {
		fmt.Fprintf(p.out, "%s %s", p.remoteTag, chunk)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.remoteTag, chunk)
}

// Echo prints the local copy of an outgoing message.
func (p *Printer) Echo(name, line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s %s: %s\n", p.youTag, name, line)
}

// Noticef prints a lifecycle notice such as the listening banner.
func (p *Printer) Noticef(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format+"\n", args...)
}

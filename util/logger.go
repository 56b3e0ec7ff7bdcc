// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0 // errors only
	LogNormal  LogLevel = 1 // plus warnings and info
	LogVerbose LogLevel = 2 // plus session traces
	LogDebug   LogLevel = 3 // everything, with timestamps
)

// Logger writes levelled diagnostics to stderr. Console output meant
// for the user (remote lines, local echo, progress) never goes through
// it; that is the console package's job.
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
}

// NewLogger returns a Logger printing messages at or below level.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, output: os.Stderr}
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Error always prints regardless of level.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERR", format, args...)
}

// Warn prints when level ≥ normal.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("WRN", format, args...)
	}
}

// Info prints when level ≥ normal.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("INF", format, args...)
	}
}

// Verbose prints when level ≥ verbose.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints when level ≥ debug.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

func (l *Logger) write(tag, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.level >= LogDebug {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.output, "%s [%s] %s\n", ts, tag, msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", tag, msg)
	}
}

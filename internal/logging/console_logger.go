// Package logging provides concrete implementations of the msgprep.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes stage progress to stdout and diagnostics to stderr.
// Progress lines are the tool's primary output, so they go to stdout where a
// pipeline can capture them; verbose and error output stays on stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to the given streams.
// Used by tests to capture output without swapping os.Stdout.
func NewConsoleLoggerTo(verbose bool, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.errOut, "[VERBOSE] "+format, args...)
}

// Info logs stage progress messages.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(l.out, format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errOut, "[ERROR] "+format, args...)
}

func (l *ConsoleLogger) write(w io.Writer, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(w, format+"\n", args...)
	} else {
		fmt.Fprint(w, format+"\n")
	}
}

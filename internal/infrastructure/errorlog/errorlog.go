// Package errorlog writes domain failures to an append-only text log,
// one line per failure.
package errorlog

import (
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// Log appends "Exception at <timestamp>: <message>" lines to a writer.
// It is not safe for concurrent use.
type Log struct {
	w      io.Writer
	closer io.Closer
	closed bool
}

// New wraps w. Close is a no-op for the writer itself.
func New(w io.Writer) *Log {
	return &Log{w: w}
}

// Open opens path for appending, creating it if needed. The caller must
// Close the log.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("errorlog: open %s: %w", path, err)
	}
	return &Log{w: f, closer: f}, nil
}

// Record appends one line for err.
func (l *Log) Record(err *shared.DomainError) error {
	if l.closed {
		return fmt.Errorf("errorlog: record after close")
	}
	if _, werr := fmt.Fprintf(l.w, "Exception at %s: %s\n", err.Timestamp(), err.Message); werr != nil {
		return fmt.Errorf("errorlog: write: %w", werr)
	}
	return nil
}

// Close releases the underlying file. Calling it again does nothing.
func (l *Log) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

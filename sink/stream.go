package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/treelog/treelog/core"
)

// Stream writes formatted records to an io.Writer. The writer is driven by
// exactly one goroutine at a time (the sink's own lock), so any io.Writer
// works, locked or not.
type Stream struct {
	base
	w io.Writer
}

// flusher is implemented by writers that buffer, e.g. bufio.Writer.
type flusher interface {
	Flush() error
}

// NewStream creates a sink writing to w. A nil writer defaults to stdout.
func NewStream(w io.Writer, opts Options) (*Stream, error) {
	if w == nil {
		w = os.Stdout
	}
	pat, err := compilePattern(opts)
	if err != nil {
		return nil, err
	}
	return &Stream{base: base{pat: pat}, w: w}, nil
}

// Message renders rec and writes it to the stream
func (s *Stream) Message(rec *core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(s.render(rec)); err != nil {
		return fmt.Errorf("sink: stream write: %w", err)
	}
	return nil
}

// Flush forwards to the writer's Flush or Sync if it has one
func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch w := s.w.(type) {
	case flusher:
		return w.Flush()
	case *os.File:
		return w.Sync()
	}
	return nil
}

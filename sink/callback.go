package sink

import (
	"github.com/treelog/treelog/core"
)

// Func receives the raw message of an admitted record, synchronously on the
// emitting goroutine.
type Func func(level core.Level, loc core.Location, msg string)

// Callback hands each admitted record to a user-supplied function. The
// function sees the unrendered message; the sink's pattern only matters if
// the callback is later swapped for a rendering sink.
type Callback struct {
	base
	fn Func
}

// NewCallback creates a callback sink around fn
func NewCallback(fn Func, opts Options) (*Callback, error) {
	pat, err := compilePattern(opts)
	if err != nil {
		return nil, err
	}
	return &Callback{base: base{pat: pat}, fn: fn}, nil
}

// Message invokes the callback with the record's level, location and message
func (c *Callback) Message(rec *core.Record) error {
	c.fn(rec.Level, rec.Loc, rec.Message)
	return nil
}

// Flush is a no-op for callback sinks
func (c *Callback) Flush() error { return nil }

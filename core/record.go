package core

import (
	"sync"
)

// Record describes one log event on its way to the sinks. It is created on
// the emitting goroutine, filled in exactly once with the message payload,
// and recycled when dispatch returns.
type Record struct {
	Level      Level
	Loc        Location
	Category   string
	ThreadID   uint64
	Time       RecordTime
	Message    string
	hasMessage bool
}

// RecordTime is a coarse wall-clock timestamp split into whole seconds and
// sub-second nanoseconds, so that per-field formatters can cache the
// rendered second independently of the sub-second part.
type RecordTime struct {
	Unix int64 // seconds since the epoch
	Nano int   // nanoseconds within the second [0, 1e9)
}

// Msec returns the millisecond component of the timestamp
func (t RecordTime) Msec() int { return t.Nano / 1e6 }

// Usec returns the microsecond component of the timestamp
func (t RecordTime) Usec() int { return t.Nano / 1e3 }

// HasMessage reports whether the message payload has been materialized
func (r *Record) HasMessage() bool { return r.hasMessage }

// SetMessage fills in the message payload. Only the first call has any
// effect; a Record's message is materialized at most once per event.
func (r *Record) SetMessage(msg string) {
	if r.hasMessage {
		return
	}
	r.Message = msg
	r.hasMessage = true
}

// recordPool recycles Record objects to keep the emit path allocation-free
var recordPool = sync.Pool{
	New: func() interface{} {
		return new(Record)
	},
}

// GetRecord retrieves a Record from the pool with level, location, category,
// thread id and timestamp filled in eagerly. The message is left
// unmaterialized.
func GetRecord(level Level, loc Location, category string) *Record {
	r := recordPool.Get().(*Record)
	now := Now()
	*r = Record{
		Level:    level,
		Loc:      loc,
		Category: category,
		ThreadID: ThreadID(),
		Time:     RecordTime{Unix: now.Unix(), Nano: now.Nanosecond()},
	}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// Package core defines the shared types used across the treelog framework.
//
// It provides the Level type for severity filtering (Fatal is the most
// severe and admits the least; Trace admits the most), the Location type
// for call-site capture, and the Record type that represents a single log
// event on its way to the sinks.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. The emit path gets a Record with GetRecord and must
// return it with PutRecord once every sink has consumed it. A Record's
// cheap fields (level, location, category, thread id, timestamp) are filled
// eagerly; the message payload is materialized at most once via SetMessage,
// and only after at least one sink has admitted the event.
//
// The wall clock behind new records is an injectable TimeSource so tests
// can control timestamps deterministically. UseCoarseClock installs a
// cached clock refreshed every 500µs for high-throughput scenarios where
// calling time.Now per event shows up in profiles.
//
// The Locker interface and the Policy constants implement the threading
// policy: under SingleThreaded every lock is a no-op, under MultiThreaded
// each node gets a readers-writer lock.
package core

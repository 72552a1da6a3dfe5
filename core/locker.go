package core

import (
	"sync"
)

// Policy selects how much synchronization the logger tree performs.
type Policy int

const (
	// MultiThreaded guards every logger node with a readers-writer lock
	// (default). Required whenever the tree is touched from more than one
	// goroutine.
	MultiThreaded Policy = iota
	// SingleThreaded makes all locking a no-op. Correct only when the whole
	// tree is confined to one goroutine or the caller supplies external
	// synchronization; concurrent use under this policy is undefined.
	SingleThreaded
)

// Locker is the lock contract used uniformly by the logger and sink engine.
// Reads (emit, level queries) take the shared side; writes (attach, detach,
// reparent, enable toggles) take the exclusive side.
type Locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// NewLocker returns the locker implementation for the policy
func NewLocker(p Policy) Locker {
	if p == SingleThreaded {
		return noopLocker{}
	}
	return new(sync.RWMutex)
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

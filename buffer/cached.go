package buffer

import (
	"sync"
	"sync/atomic"
)

// RenderFunc appends the textual form of v to dst and returns the extended
// slice, strconv.AppendInt style.
type RenderFunc[T comparable] func(dst []byte, v T) []byte

// CachedFormatter renders values of type T through a RenderFunc and caches
// the rendered text, re-rendering only when the value changes. It is built
// for the common case of the same value being formatted repeatedly by
// concurrently racing sink dispatches (the same goroutine id, the same
// timestamp second shared by many lines within that second).
//
// Two slots are kept. Readers load the published slot index with acquire
// semantics and treat the slot's entry as an immutable snapshot. A writer
// serializes on a short mutex, renders the new value into a fresh entry in
// the spare slot, then publishes the spare with a release store of the
// index. Entries are never mutated after publication, so a reader always
// observes a complete, previously published render.
type CachedFormatter[T comparable] struct {
	render RenderFunc[T]
	active atomic.Uint32
	mu     sync.Mutex
	slots  [2]atomic.Pointer[cacheEntry[T]]
}

type cacheEntry[T comparable] struct {
	value T
	text  []byte
}

// NewCachedFormatter creates a CachedFormatter backed by render
func NewCachedFormatter[T comparable](render RenderFunc[T]) *CachedFormatter[T] {
	return &CachedFormatter[T]{render: render}
}

// Format appends the cached or freshly rendered textual form of v to out
func (c *CachedFormatter[T]) Format(out *Buffer, v T) {
	idx := c.active.Load()
	if e := c.slots[idx].Load(); e != nil && e.value == v {
		out.Append(e.text)
		return
	}

	c.mu.Lock()
	// Re-check: another writer may have published this value meanwhile.
	idx = c.active.Load()
	if e := c.slots[idx].Load(); e != nil && e.value == v {
		c.mu.Unlock()
		out.Append(e.text)
		return
	}

	e := &cacheEntry[T]{value: v, text: c.render(nil, v)}
	spare := 1 - idx
	c.slots[spare].Store(e)
	c.active.Store(spare)
	c.mu.Unlock()

	out.Append(e.text)
}

// Package buffer provides the low-level formatting storage used by the
// pattern renderer.
//
// Buffer is a growable contiguous byte buffer with a 256-byte inline
// capacity, so typical short log lines never allocate. Overflow reallocates
// geometrically (1.5×) while preserving content, and an optional OnGrow
// callback notifies holders of references into the old backing storage.
//
// CachedFormatter is a per-field value cache: it renders a value once and
// serves the cached text until the value changes. Readers are lock-free on
// the hit path; writers serialize on a short mutex and publish the freshly
// rendered slot with an atomic index store. This keeps repeated values such
// as the current timestamp second or a goroutine id from being re-rendered
// on every line.
package buffer

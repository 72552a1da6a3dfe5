package buffer

import (
	"unicode/utf8"
)

// inlineSize is the inline capacity. Typical log lines fit without ever
// touching the heap.
const inlineSize = 256

// Buffer is a growable contiguous byte buffer with inline storage for short
// content and geometric heap growth beyond it. The zero value is ready to
// use.
type Buffer struct {
	buf    []byte
	inline [inlineSize]byte
	onGrow func(old, new []byte)
}

// OnGrow registers a callback invoked after the backing storage moves, with
// the old and new backing slices. Formatter caches holding references into
// earlier buffer contents use it to relocate or invalidate.
func (b *Buffer) OnGrow(fn func(old, new []byte)) {
	b.onGrow = fn
}

// Len returns the number of bytes written
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity
func (b *Buffer) Cap() int {
	if b.buf == nil {
		return inlineSize
	}
	return cap(b.buf)
}

// Bytes returns the written content. The slice is valid until the next
// mutating call.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns the written content as a string
func (b *Buffer) String() string { return string(b.buf) }

// Clear empties the buffer, keeping the backing storage
func (b *Buffer) Clear() {
	if b.buf != nil {
		b.buf = b.buf[:0]
	}
}

// Reserve ensures capacity for at least n further bytes, growing if needed
func (b *Buffer) Reserve(n int) {
	b.grow(len(b.buf) + n)
}

// Resize sets the length to n. Growing beyond the current length exposes
// zero bytes.
func (b *Buffer) Resize(n int) {
	b.grow(n)
	if n > len(b.buf) {
		tail := b.buf[len(b.buf):n]
		for i := range tail {
			tail[i] = 0
		}
	}
	b.buf = b.buf[:n]
}

// Append appends p. Every append either succeeds or grows the buffer first;
// content is never truncated.
func (b *Buffer) Append(p []byte) {
	b.grow(len(b.buf) + len(p))
	b.buf = append(b.buf, p...)
}

// AppendString appends s
func (b *Buffer) AppendString(s string) {
	b.grow(len(b.buf) + len(s))
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte
func (b *Buffer) AppendByte(c byte) {
	b.grow(len(b.buf) + 1)
	b.buf = append(b.buf, c)
}

// AppendRune appends the UTF-8 encoding of r
func (b *Buffer) AppendRune(r rune) {
	b.grow(len(b.buf) + utf8.UTFMax)
	b.buf = utf8.AppendRune(b.buf, r)
}

// grow makes room for a total length of n bytes. New capacity is the larger
// of the requested size and 1.5× the old capacity, so repeated appends stay
// amortized O(1).
func (b *Buffer) grow(n int) {
	if b.buf == nil {
		b.buf = b.inline[:0]
	}
	if n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) + cap(b.buf)/2
	if newCap < n {
		newCap = n
	}
	old := b.buf
	next := make([]byte, len(old), newCap)
	copy(next, old)
	b.buf = next
	if b.onGrow != nil {
		b.onGrow(old, next)
	}
}

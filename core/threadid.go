package core

import (
	"runtime"
)

// ThreadID returns the id of the calling goroutine, parsed from the
// runtime.Stack header ("goroutine N [running]:"). The id is stable for the
// lifetime of the goroutine, which makes it a good candidate for the
// cached-formatter fast path downstream.
func ThreadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]

	// Skip "goroutine ".
	const prefix = "goroutine "
	if len(s) < len(prefix) {
		return 0
	}
	s = s[len(prefix):]

	var id uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

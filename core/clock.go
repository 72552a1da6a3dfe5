package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// TimeSource supplies the wall-clock time for new records. Tests install a
// deterministic source via SetTimeSource.
type TimeSource func() time.Time

var timeSource atomic.Pointer[TimeSource]

func init() {
	src := TimeSource(time.Now)
	timeSource.Store(&src)
}

// SetTimeSource replaces the process-wide time source. Passing nil restores
// time.Now.
func SetTimeSource(src TimeSource) {
	if src == nil {
		src = time.Now
	}
	timeSource.Store(&src)
}

// Now returns the current time from the installed source
func Now() time.Time {
	return (*timeSource.Load())()
}

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time
)

// UseCoarseClock installs a cached clock as the time source: a background
// goroutine refreshes the cached time.Now() every 500µs and Now returns the
// cached value. Safe to call multiple times; the goroutine is started
// exactly once and runs for the lifetime of the process, which is
// intentional because logging typically spans the entire application
// lifecycle.
func UseCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
	SetTimeSource(coarseTime)
}

// coarseTime returns the most recently cached time.Time value
func coarseTime() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}

package buffer

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestBuffer_InlineThenGrow(t *testing.T) {
	var b Buffer

	short := strings.Repeat("x", 100)
	b.AppendString(short)
	if b.Cap() != inlineSize {
		t.Errorf("short content should stay inline, cap = %d", b.Cap())
	}

	long := strings.Repeat("y", 1000)
	b.AppendString(long)
	if got := b.String(); got != short+long {
		t.Error("content not preserved across growth")
	}
	if b.Cap() < 1100 {
		t.Errorf("cap = %d after appending 1100 bytes", b.Cap())
	}
}

func TestBuffer_GrowthFactor(t *testing.T) {
	var b Buffer
	b.Reserve(1000)
	capBefore := b.Cap()

	// Exceeding the capacity by one byte must grow to at least 1.5×.
	b.Resize(capBefore)
	b.AppendByte('z')
	if b.Cap() < capBefore+capBefore/2 {
		t.Errorf("cap grew %d -> %d, want at least 1.5x", capBefore, b.Cap())
	}
}

func TestBuffer_OnGrow(t *testing.T) {
	var b Buffer
	var calls int
	b.OnGrow(func(old, new []byte) {
		calls++
		if len(old) != len(new) {
			t.Errorf("grow changed length: %d -> %d", len(old), len(new))
		}
	})

	b.AppendString("hello")
	if calls != 0 {
		t.Error("inline append should not trigger grow callback")
	}
	b.AppendString(strings.Repeat("a", inlineSize))
	if calls != 1 {
		t.Errorf("grow callback called %d times, want 1", calls)
	}
}

func TestBuffer_ResizeAndClear(t *testing.T) {
	var b Buffer
	b.AppendString("abcdef")
	b.Resize(3)
	if b.String() != "abc" {
		t.Errorf("after shrink: %q", b.String())
	}
	b.Resize(5)
	if !bytes.Equal(b.Bytes(), []byte{'a', 'b', 'c', 0, 0}) {
		t.Errorf("after grow: %v", b.Bytes())
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("len after clear = %d", b.Len())
	}
}

func TestBuffer_AppendRune(t *testing.T) {
	var b Buffer
	b.AppendRune('ä')
	b.AppendRune('本')
	if b.String() != "ä本" {
		t.Errorf("got %q", b.String())
	}
}

func TestCachedFormatter_RendersOncePerValue(t *testing.T) {
	var renders int
	cf := NewCachedFormatter(func(dst []byte, v int64) []byte {
		renders++
		return strconv.AppendInt(dst, v, 10)
	})

	var out Buffer
	cf.Format(&out, 42)
	cf.Format(&out, 42)
	cf.Format(&out, 42)
	if out.String() != "424242" {
		t.Errorf("got %q", out.String())
	}
	if renders != 1 {
		t.Errorf("rendered %d times for one value, want 1", renders)
	}

	cf.Format(&out, 7)
	if renders != 2 {
		t.Errorf("rendered %d times after value change, want 2", renders)
	}
	if out.String() != "4242427" {
		t.Errorf("got %q", out.String())
	}
}

func TestCachedFormatter_Concurrent(t *testing.T) {
	cf := NewCachedFormatter(func(dst []byte, v int64) []byte {
		return strconv.AppendInt(dst, v, 10)
	})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				var out Buffer
				// Two alternating values force publication churn.
				v := int64(100 + i%2)
				cf.Format(&out, v)
				want := strconv.FormatInt(v, 10)
				if got := out.String(); got != want {
					t.Errorf("goroutine %d: got %q, want %q", g, got, want)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

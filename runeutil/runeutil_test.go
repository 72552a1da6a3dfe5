package runeutil

import (
	"testing"
	"unicode/utf8"
)

func TestCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"äöü", 3},
		{"日本語", 3},
		{"a日b", 3},
	}
	for _, c := range cases {
		if got := CountString(c.in); got != c.want {
			t.Errorf("CountString(%q) = %d, want %d", c.in, got, c.want)
		}
		if got := Count([]byte(c.in)); got != c.want {
			t.Errorf("Count(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCount_InvalidBytes(t *testing.T) {
	// Each invalid byte counts as one codepoint.
	if got := Count([]byte{0xff, 0xfe}); got != 2 {
		t.Errorf("Count(invalid) = %d, want 2", got)
	}
}

func TestDecode(t *testing.T) {
	r, n := DecodeString("日x")
	if r != '日' || n != 3 {
		t.Errorf("DecodeString = %q/%d", r, n)
	}
	r, n = Decode([]byte{0xff})
	if r != utf8.RuneError || n != 1 {
		t.Errorf("Decode(invalid) = %q/%d", r, n)
	}
}

// Package runeutil provides the codepoint counting and UTF-8 decoding
// helpers used by the pattern renderer for width and alignment. Widths are
// measured in codepoints, not bytes, so multi-byte characters pad
// correctly.
package runeutil

import (
	"unicode/utf8"
)

// Count returns the number of codepoints in p. Invalid sequences count one
// codepoint per offending byte, matching utf8.RuneCount.
func Count(p []byte) int {
	return utf8.RuneCount(p)
}

// CountString returns the number of codepoints in s
func CountString(s string) int {
	return utf8.RuneCountInString(s)
}

// Decode returns the first codepoint in p and its width in bytes. Invalid
// input yields (utf8.RuneError, 1).
func Decode(p []byte) (rune, int) {
	return utf8.DecodeRune(p)
}

// DecodeString returns the first codepoint in s and its width in bytes
func DecodeString(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

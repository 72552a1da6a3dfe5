package pattern

import (
	"fmt"
	"unicode/utf8"

	"github.com/treelog/treelog/buffer"
	"github.com/treelog/treelog/runeutil"
)

// alignment of a padded field.
type alignment byte

const (
	alignNone   alignment = 0
	alignLeft   alignment = '<'
	alignRight  alignment = '>'
	alignCenter alignment = '^'
)

// strSpec is a parsed string format spec: [[fill]align][width].
// Width counts codepoints. Under-length fields are padded, over-length
// fields pass through unpadded; truncation is never performed.
type strSpec struct {
	fill  rune
	align alignment
	width int
}

// numSpec extends strSpec for integer fields with an optional base suffix
// (d, x, X, o, b) and the shorthand "0N" for zero-padded right alignment.
type numSpec struct {
	strSpec
	base  int
	upper bool
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^'
}

// parseStrSpec parses [[fill]align][width]. An empty spec is valid and
// means "copy verbatim".
func parseStrSpec(s string) (strSpec, error) {
	sp := strSpec{fill: ' ', align: alignNone}
	if s == "" {
		return sp, nil
	}

	// A fill character is only recognized when followed by an alignment.
	r0, n0 := utf8.DecodeRuneInString(s)
	if n0 < len(s) {
		if r1, _ := utf8.DecodeRuneInString(s[n0:]); isAlign(r1) {
			sp.fill = r0
			sp.align = alignment(r1)
			s = s[n0+1:]
		}
	}
	if sp.align == alignNone && len(s) > 0 && isAlign(rune(s[0])) {
		sp.align = alignment(s[0])
		s = s[1:]
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return sp, fmt.Errorf("%w: unexpected %q in spec", ErrMalformed, c)
		}
		sp.width = sp.width*10 + int(c-'0')
	}
	return sp, nil
}

// parseNumSpec parses the integer variant: [[fill]align][0][width][base].
func parseNumSpec(s string) (numSpec, error) {
	sp := numSpec{strSpec: strSpec{fill: ' ', align: alignNone}, base: 10}
	if s == "" {
		return sp, nil
	}

	switch s[len(s)-1] {
	case 'd':
		s = s[:len(s)-1]
	case 'x':
		sp.base = 16
		s = s[:len(s)-1]
	case 'X':
		sp.base = 16
		sp.upper = true
		s = s[:len(s)-1]
	case 'o':
		sp.base = 8
		s = s[:len(s)-1]
	case 'b':
		sp.base = 2
		s = s[:len(s)-1]
	}

	// "05" means width 5, zero fill, right aligned.
	if len(s) > 1 && s[0] == '0' && !isAlign(rune(s[1])) {
		sp.fill = '0'
		sp.align = alignRight
		s = s[1:]
	}

	inner, err := parseStrSpec(s)
	if err != nil {
		return sp, err
	}
	if inner.align != alignNone {
		sp.align = inner.align
		sp.fill = inner.fill
	}
	if inner.width > 0 {
		sp.width = inner.width
	}
	if sp.width > 0 && sp.align == alignNone {
		// Numbers right-align by default.
		sp.align = alignRight
	}
	return sp, nil
}

// pad applies the spec to the buffer segment starting at segStart,
// inserting fill codepoints before, after, or around it.
func (sp strSpec) pad(buf *buffer.Buffer, segStart int) {
	if sp.width == 0 {
		return
	}
	n := runeutil.Count(buf.Bytes()[segStart:])
	if n >= sp.width {
		return
	}
	missing := sp.width - n

	var fill [utf8.UTFMax]byte
	fw := utf8.EncodeRune(fill[:], sp.fill)

	var before, after int
	switch sp.align {
	case alignRight:
		before = missing
	case alignCenter:
		before = missing / 2
		after = missing - before
	default:
		// Strings pad on the right when no alignment is given.
		after = missing
	}

	segLen := buf.Len() - segStart
	buf.Resize(buf.Len() + missing*fw)
	b := buf.Bytes()

	if before > 0 {
		copy(b[segStart+before*fw:], b[segStart:segStart+segLen])
		for i := 0; i < before; i++ {
			copy(b[segStart+i*fw:], fill[:fw])
		}
	}
	tail := segStart + before*fw + segLen
	for i := 0; i < after; i++ {
		copy(b[tail+i*fw:], fill[:fw])
	}
}

package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/treelog/treelog/buffer"
	"github.com/treelog/treelog/core"
)

var (
	// ErrUnknownPlaceholder is returned when a template names a placeholder
	// outside the recognized set.
	ErrUnknownPlaceholder = errors.New("pattern: unknown placeholder")
	// ErrMalformed is returned for syntactically invalid templates or specs.
	ErrMalformed = errors.New("pattern: malformed template")
)

// DefaultTimeLayout renders the {time} field when no spec is given.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Default returns the default template: timestamp with milliseconds, padded
// level name, goroutine id, category, call site and message.
func Default() string {
	return "{time}.{msec} {level:<5} [{thread}] [{category}] {file}:{line} {message}"
}

type fieldKind int

const (
	fieldLiteral fieldKind = iota
	fieldCategory
	fieldLevel
	fieldFile
	fieldLine
	fieldFunction
	fieldMessage
	fieldTime
	fieldMsec
	fieldUsec
	fieldNsec
	fieldThread
)

var fieldNames = map[string]fieldKind{
	"category": fieldCategory,
	"level":    fieldLevel,
	"file":     fieldFile,
	"line":     fieldLine,
	"function": fieldFunction,
	"message":  fieldMessage,
	"time":     fieldTime,
	"msec":     fieldMsec,
	"usec":     fieldUsec,
	"nsec":     fieldNsec,
	"thread":   fieldThread,
}

// step is one compiled placeholder: either a literal span into the retained
// template copy or a typed field formatter.
type step struct {
	kind       fieldKind
	start, end int     // literal span into Pattern.raw
	str        strSpec // string fields
	num        numSpec // integer fields
	layout     string  // time field

	// Per-step cached formatter state, parsed once at compile.
	cachedInt  *buffer.CachedFormatter[int64]
	cachedUint *buffer.CachedFormatter[uint64]
}

// Pattern is a compiled template. Compile either fully succeeds or returns
// an error; a Pattern is never left partially built. After compilation a
// Pattern is immutable except for SetLevels.
type Pattern struct {
	raw       string // owned copy of the template; literal spans point here
	steps     []step
	names     [core.LevelCount]string
	levelText [core.LevelCount][]byte // pre-rendered display names
}

// Compile parses a template string with {name[:spec]} placeholders into a
// Pattern. Recognized names are category, level, file, line, function,
// message, time, msec, usec, nsec and thread. Unknown names are rejected
// with ErrUnknownPlaceholder. "{{" and "}}" escape literal braces.
func Compile(template string) (*Pattern, error) {
	p := &Pattern{raw: template, names: core.DefaultLevelNames}
	p.renderLevelNames()

	i := 0
	litStart := 0
	flushLiteral := func(end int) {
		if end > litStart {
			p.steps = append(p.steps, step{kind: fieldLiteral, start: litStart, end: end})
		}
	}

	for i < len(template) {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				flushLiteral(i + 1) // keep one brace
				i += 2
				litStart = i
				continue
			}
			flushLiteral(i)
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed placeholder at offset %d", ErrMalformed, i)
			}
			end += i
			body := template[i+1 : end]
			name, spec := body, ""
			if colon := strings.IndexByte(body, ':'); colon >= 0 {
				name, spec = body[:colon], body[colon+1:]
			}
			st, err := compileField(name, spec)
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d", err, i)
			}
			p.steps = append(p.steps, st)
			i = end + 1
			litStart = i
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				flushLiteral(i + 1)
				i += 2
				litStart = i
				continue
			}
			return nil, fmt.Errorf("%w: stray '}' at offset %d", ErrMalformed, i)
		default:
			i++
		}
	}
	flushLiteral(len(template))
	return p, nil
}

func compileField(name, spec string) (step, error) {
	kind, ok := fieldNames[name]
	if !ok {
		return step{}, fmt.Errorf("%w %q", ErrUnknownPlaceholder, name)
	}
	st := step{kind: kind}

	switch kind {
	case fieldCategory, fieldLevel, fieldFile, fieldFunction, fieldMessage:
		sp, err := parseStrSpec(spec)
		if err != nil {
			return step{}, err
		}
		st.str = sp

	case fieldLine, fieldMsec, fieldUsec, fieldNsec:
		sp, err := parseNumSpec(spec)
		if err != nil {
			return step{}, err
		}
		if spec == "" {
			// Sub-second fields zero-pad to their natural width so
			// "{time}.{msec}" reads as a decimal fraction.
			switch kind {
			case fieldMsec:
				sp = fixedZeroPad(3)
			case fieldUsec:
				sp = fixedZeroPad(6)
			case fieldNsec:
				sp = fixedZeroPad(9)
			}
		}
		st.num = sp
		st.cachedInt = buffer.NewCachedFormatter(sp.renderInt)

	case fieldThread:
		sp, err := parseNumSpec(spec)
		if err != nil {
			return step{}, err
		}
		st.num = sp
		st.cachedUint = buffer.NewCachedFormatter(sp.renderUint)

	case fieldTime:
		st.layout = spec
		if st.layout == "" {
			st.layout = DefaultTimeLayout
		}
		layout := st.layout
		st.cachedInt = buffer.NewCachedFormatter(func(dst []byte, sec int64) []byte {
			return time.Unix(sec, 0).AppendFormat(dst, layout)
		})
	}
	return st, nil
}

// renderInt is the RenderFunc for cached integer fields.
func (sp numSpec) renderInt(dst []byte, v int64) []byte {
	s := strconv.AppendInt(dst, v, sp.base)
	if sp.upper {
		upperHex(s[len(dst):])
	}
	return s
}

func (sp numSpec) renderUint(dst []byte, v uint64) []byte {
	s := strconv.AppendUint(dst, v, sp.base)
	if sp.upper {
		upperHex(s[len(dst):])
	}
	return s
}

func fixedZeroPad(width int) numSpec {
	return numSpec{strSpec: strSpec{fill: '0', align: alignRight, width: width}, base: 10}
}

func upperHex(p []byte) {
	for i, c := range p {
		if c >= 'a' && c <= 'f' {
			p[i] = c - ('a' - 'A')
		}
	}
}

// SetLevels overrides the six builtin level display names
func (p *Pattern) SetLevels(names [core.LevelCount]string) {
	p.names = names
	p.renderLevelNames()
}

func (p *Pattern) renderLevelNames() {
	for i, name := range p.names {
		p.levelText[i] = []byte(name)
	}
}

// Format renders rec through the compiled placeholder list into buf, in
// template order. The caller owns buf; nothing is written elsewhere.
func (p *Pattern) Format(buf *buffer.Buffer, rec *core.Record) {
	for i := range p.steps {
		st := &p.steps[i]
		segStart := buf.Len()

		switch st.kind {
		case fieldLiteral:
			buf.AppendString(p.raw[st.start:st.end])
			continue

		case fieldCategory:
			buf.AppendString(rec.Category)
		case fieldFile:
			buf.AppendString(rec.Loc.File)
		case fieldFunction:
			buf.AppendString(rec.Loc.Function)
		case fieldMessage:
			buf.AppendString(rec.Message)

		case fieldLevel:
			if rec.Level.Valid() {
				buf.Append(p.levelText[rec.Level])
			} else {
				buf.AppendString("UNKNOWN")
			}

		case fieldLine:
			st.cachedInt.Format(buf, int64(rec.Loc.Line))
		case fieldMsec:
			st.cachedInt.Format(buf, int64(rec.Time.Msec()))
		case fieldUsec:
			st.cachedInt.Format(buf, int64(rec.Time.Usec()))
		case fieldNsec:
			st.cachedInt.Format(buf, int64(rec.Time.Nano))
		case fieldThread:
			st.cachedUint.Format(buf, rec.ThreadID)
		case fieldTime:
			st.cachedInt.Format(buf, rec.Time.Unix)
		}

		switch st.kind {
		case fieldCategory, fieldLevel, fieldFile, fieldFunction, fieldMessage:
			st.str.pad(buf, segStart)
		case fieldLine, fieldMsec, fieldUsec, fieldNsec, fieldThread:
			st.num.pad(buf, segStart)
		}
	}
}

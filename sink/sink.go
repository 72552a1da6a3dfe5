package sink

import (
	"sync"

	"github.com/treelog/treelog/buffer"
	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/pattern"
)

// Sink accepts formatted records for delivery to some transport. A sink
// instance may be attached to any number of loggers; its internal state is
// guarded by its own lock, independent of any logger's lock, so tree
// mutations never wait on sink I/O.
type Sink interface {
	// Message renders rec through the sink's pattern and delivers it.
	// Transport failures are returned, never swallowed.
	Message(rec *core.Record) error

	// Flush forces any buffered output to be durable.
	Flush() error

	// SetPattern recompiles the sink's pattern wholesale. On error the
	// previous pattern stays installed.
	SetPattern(template string) error

	// SetLevels overrides level display names on the sink's pattern.
	SetLevels(names ...LevelName)
}

// LevelName pairs a level with its display name for SetLevels and the
// Options.Levels constructor argument.
type LevelName struct {
	Level core.Level
	Name  string
}

// Options carries the trailing constructor arguments every concrete sink
// accepts: an optional pattern template (default pattern.Default()) and
// optional level display-name overrides.
type Options struct {
	Pattern string
	Levels  []LevelName
}

// base owns the compiled pattern and the render buffer shared by the
// concrete sinks. The mutex makes render-and-deliver atomic per sink.
type base struct {
	mu  sync.Mutex
	pat *pattern.Pattern
	buf buffer.Buffer
}

// compilePattern builds the pattern a sink starts out with. The result is
// placed into the sink's base at construction; base values are never copied
// afterwards because they carry the sink lock.
func compilePattern(opts Options) (*pattern.Pattern, error) {
	template := opts.Pattern
	if template == "" {
		template = pattern.Default()
	}
	pat, err := pattern.Compile(template)
	if err != nil {
		return nil, err
	}
	applyLevels(pat, opts.Levels)
	return pat, nil
}

func applyLevels(pat *pattern.Pattern, overrides []LevelName) {
	if len(overrides) == 0 {
		return
	}
	names := core.DefaultLevelNames
	for _, ln := range overrides {
		if ln.Level.Valid() {
			names[ln.Level] = ln.Name
		}
	}
	pat.SetLevels(names)
}

// render formats rec into the sink buffer and guarantees the line
// terminator. Callers must hold b.mu.
func (b *base) render(rec *core.Record) []byte {
	b.buf.Clear()
	b.pat.Format(&b.buf, rec)
	line := b.buf.Bytes()
	if len(line) == 0 || line[len(line)-1] != '\n' {
		b.buf.AppendByte('\n')
		line = b.buf.Bytes()
	}
	return line
}

// SetPattern recompiles the pattern; the swap is all-or-nothing.
func (b *base) SetPattern(template string) error {
	pat, err := pattern.Compile(template)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.pat = pat
	b.mu.Unlock()
	return nil
}

// SetLevels overrides level display names on the current pattern
func (b *base) SetLevels(names ...LevelName) {
	b.mu.Lock()
	applyLevels(b.pat, names)
	b.mu.Unlock()
}

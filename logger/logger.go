package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/sink"
)

var (
	// ErrCycle is returned by SetParent when the new parent is the logger
	// itself or one of its descendants.
	ErrCycle = errors.New("logger: reparenting would create a cycle")
	// ErrNotAttached is returned when a sink operation names a sink that is
	// not attached to this logger.
	ErrNotAttached = errors.New("logger: sink not attached")
)

// treeMu serializes all structural mutations of every logger tree in the
// process: attach/detach, enable toggles, propagation changes, reparenting
// and Close. Emits never take it; they only read per-node state under the
// node's own lock. Mutations are rare next to emits, so one mutex for all
// trees makes lock ordering trivial.
var treeMu sync.Mutex

// registration is one local sink attachment. The enabled flag toggles the
// attachment without detaching it.
type registration struct {
	sink    sink.Sink
	enabled bool
}

// Attachment pairs a sink with the logger whose level governs it. The same
// sink attached by two loggers yields two attachments, each checked against
// its own owner's level.
type Attachment struct {
	Sink  sink.Sink
	Owner *Logger
}

// Logger is one node of the category tree. It owns a level, a set of local
// sink attachments, parent and children links, and a materialized
// effective-sink list covering itself and, with propagation enabled, its
// whole ancestor chain.
type Logger struct {
	category string
	policy   core.Policy
	lk       core.Locker

	// Guarded by lk.
	level     core.Level
	effective []Attachment // replaced wholesale, never mutated in place

	// Guarded by treeMu.
	sinks     []registration
	parent    *Logger
	children  []*Logger
	propagate bool
}

// New creates a logger with the given category and level, optionally as a
// child of parent. Children inherit the parent's threading policy and start
// with propagation enabled.
func New(category string, level core.Level, parent *Logger) *Logger {
	policy := core.MultiThreaded
	if parent != nil {
		policy = parent.policy
	}
	return newLogger(category, level, parent, policy)
}

func newLogger(category string, level core.Level, parent *Logger, policy core.Policy) *Logger {
	l := &Logger{
		category:  category,
		policy:    policy,
		lk:        core.NewLocker(policy),
		level:     level,
		propagate: true,
	}
	treeMu.Lock()
	if parent != nil {
		l.parent = parent
		parent.children = append(parent.children, l)
	}
	rebuild(l)
	treeMu.Unlock()
	return l
}

// Category returns the logger's name
func (l *Logger) Category() string { return l.category }

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	l.lk.RLock()
	defer l.lk.RUnlock()
	return l.level
}

// SetLevel changes the threshold. Takes effect immediately, including for
// attachments this logger contributed to descendants.
func (l *Logger) SetLevel(level core.Level) {
	l.lk.Lock()
	l.level = level
	l.lk.Unlock()
}

// LevelEnabled reports whether an event at the given level passes this
// logger's threshold.
func (l *Logger) LevelEnabled(level core.Level) bool {
	l.lk.RLock()
	defer l.lk.RUnlock()
	return l.level.Admits(level)
}

// Parent returns the current parent, or nil for a root
func (l *Logger) Parent() *Logger {
	treeMu.Lock()
	defer treeMu.Unlock()
	return l.parent
}

// Propagate reports whether this logger inherits its parent's sinks
func (l *Logger) Propagate() bool {
	treeMu.Lock()
	defer treeMu.Unlock()
	return l.propagate
}

// AddSink attaches s to this logger, enabled. The attachment is visible to
// every descendant with propagation on before AddSink returns.
func (l *Logger) AddSink(s sink.Sink) {
	treeMu.Lock()
	l.sinks = append(l.sinks, registration{sink: s, enabled: true})
	rebuild(l)
	treeMu.Unlock()
}

// RemoveSink detaches the first attachment of s from this logger
func (l *Logger) RemoveSink(s sink.Sink) error {
	treeMu.Lock()
	defer treeMu.Unlock()
	for i := range l.sinks {
		if l.sinks[i].sink == s {
			l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
			rebuild(l)
			return nil
		}
	}
	return ErrNotAttached
}

// SetSinkEnabled toggles an attachment without detaching it
func (l *Logger) SetSinkEnabled(s sink.Sink, enabled bool) error {
	treeMu.Lock()
	defer treeMu.Unlock()
	for i := range l.sinks {
		if l.sinks[i].sink == s {
			l.sinks[i].enabled = enabled
			rebuild(l)
			return nil
		}
	}
	return ErrNotAttached
}

// SetPropagate toggles inheritance of the parent's effective sinks
func (l *Logger) SetPropagate(propagate bool) {
	treeMu.Lock()
	l.propagate = propagate
	rebuild(l)
	treeMu.Unlock()
}

// SetParent moves the logger (and its subtree) under a new parent; nil
// detaches it into a standalone root. Reparenting onto itself or one of its
// own descendants is rejected with ErrCycle.
func (l *Logger) SetParent(parent *Logger) error {
	treeMu.Lock()
	defer treeMu.Unlock()

	seen := make(map[*Logger]bool)
	for p := parent; p != nil; p = p.parent {
		if p == l || seen[p] {
			return ErrCycle
		}
		seen[p] = true
	}

	if l.parent != nil {
		l.parent.removeChild(l)
	}
	l.parent = parent
	if parent != nil {
		parent.children = append(parent.children, l)
	}
	rebuild(l)
	return nil
}

// Close detaches the logger from the tree: it removes itself from its
// parent's children and reparents each of its own children to that former
// parent, preserving the rest of the tree. The logger keeps working
// afterwards as an empty standalone root.
func (l *Logger) Close() error {
	treeMu.Lock()
	defer treeMu.Unlock()

	grandparent := l.parent
	if grandparent != nil {
		grandparent.removeChild(l)
	}
	children := l.children
	l.children = nil
	l.parent = nil
	l.sinks = nil

	for _, c := range children {
		c.parent = grandparent
		if grandparent != nil {
			grandparent.children = append(grandparent.children, c)
		}
		rebuild(c)
	}
	rebuild(l)
	return nil
}

func (l *Logger) removeChild(c *Logger) {
	for i := range l.children {
		if l.children[i] == c {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// rebuild recomputes the effective-sink list of root and every descendant,
// breadth-first so a child is only recomputed after its parent's update is
// visible. Each node's list is built aside and swapped under that node's
// write lock, so readers always see either the old or the new list, never a
// partial one. The visited set guarantees termination even if links were
// somehow corrupted into a cycle. Callers hold treeMu and no node lock.
func rebuild(root *Logger) {
	visited := map[*Logger]bool{root: true}
	queue := []*Logger{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		eff := make([]Attachment, 0, len(n.sinks))
		for _, reg := range n.sinks {
			if reg.enabled {
				eff = append(eff, Attachment{Sink: reg.sink, Owner: n})
			}
		}
		if n.propagate && n.parent != nil {
			n.parent.lk.RLock()
			inherited := n.parent.effective
			n.parent.lk.RUnlock()
			eff = append(eff, inherited...)
		}

		n.lk.Lock()
		n.effective = eff
		n.lk.Unlock()

		for _, c := range n.children {
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}
}

// EffectiveSinks returns a copy of the materialized effective-sink list:
// this logger's own enabled attachments followed by the inherited ones,
// each paired with its owning logger.
func (l *Logger) EffectiveSinks() []Attachment {
	l.lk.RLock()
	eff := l.effective
	l.lk.RUnlock()
	out := make([]Attachment, len(eff))
	copy(out, eff)
	return out
}

// Log emits a literal message
func (l *Logger) Log(level core.Level, msg string) error {
	return l.emit(level, core.Capture(1), "", func() string { return msg }, nil)
}

// Logf emits a formatted message. The format operation runs only if some
// sink admits the event.
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) error {
	return l.emit(level, core.Capture(1), "", func() string {
		return fmt.Sprintf(format, args...)
	}, nil)
}

// LogFunc emits a lazily produced message. fn is invoked exactly once if at
// least one sink admits the event, and not at all otherwise.
func (l *Logger) LogFunc(level core.Level, fn func() string) error {
	return l.emit(level, core.Capture(1), "", fn, nil)
}

// LogAction runs fn exactly once if at least one sink admits the event and
// skips sink dispatch entirely; the callback fully owns the side effect.
func (l *Logger) LogAction(level core.Level, fn func()) error {
	return l.emit(level, core.Capture(1), "", nil, fn)
}

// Output emits with an explicit location and an optional category override
// (empty keeps the logger's category).
func (l *Logger) Output(level core.Level, loc core.Location, category, msg string) error {
	return l.emit(level, loc, category, func() string { return msg }, nil)
}

// emit walks a snapshot of the effective-sink list. The message payload is
// materialized at most once, on the first admitting attachment; with zero
// admitting attachments no formatting work happens at all. A sink error
// aborts dispatch and surfaces to the call site unchanged.
func (l *Logger) emit(level core.Level, loc core.Location, category string, message func() string, action func()) error {
	l.lk.RLock()
	eff := l.effective
	l.lk.RUnlock()
	if len(eff) == 0 {
		return nil
	}

	if category == "" {
		category = l.category
	}
	rec := core.GetRecord(level, loc, category)
	defer core.PutRecord(rec)

	for _, att := range eff {
		if !att.Owner.LevelEnabled(level) {
			continue
		}
		if action != nil {
			action()
			return nil
		}
		if !rec.HasMessage() {
			rec.SetMessage(message())
		}
		if err := att.Sink.Message(rec); err != nil {
			return err
		}
	}
	return nil
}

// Trace emits a literal message at TraceLevel
func (l *Logger) Trace(msg string) error {
	return l.emit(core.TraceLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Debug emits a literal message at DebugLevel
func (l *Logger) Debug(msg string) error {
	return l.emit(core.DebugLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Info emits a literal message at InfoLevel
func (l *Logger) Info(msg string) error {
	return l.emit(core.InfoLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Warning emits a literal message at WarningLevel
func (l *Logger) Warning(msg string) error {
	return l.emit(core.WarningLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Error emits a literal message at ErrorLevel
func (l *Logger) Error(msg string) error {
	return l.emit(core.ErrorLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Fatal emits a literal message at FatalLevel. Fatal is the most severe
// filter level; it does not terminate the process.
func (l *Logger) Fatal(msg string) error {
	return l.emit(core.FatalLevel, core.Capture(1), "", func() string { return msg }, nil)
}

// Tracef emits a formatted message at TraceLevel
func (l *Logger) Tracef(format string, args ...interface{}) error {
	return l.emit(core.TraceLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Debugf emits a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.emit(core.DebugLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Infof emits a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.emit(core.InfoLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Warningf emits a formatted message at WarningLevel
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.emit(core.WarningLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Errorf emits a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.emit(core.ErrorLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

// Fatalf emits a formatted message at FatalLevel
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	return l.emit(core.FatalLevel, core.Capture(1), "", func() string { return fmt.Sprintf(format, args...) }, nil)
}

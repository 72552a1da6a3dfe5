// Package slogbridge adapts a treelog Logger to log/slog.Handler, allowing
// the logger tree to serve as a drop-in backend for the standard library's
// structured logging front end.
//
// treelog carries no key-value payload of its own, so attributes and
// groups are rendered into the message text as trailing "key=value" pairs,
// group names joined with dots. The slog record's own source information
// replaces the bridge's call-site capture when available.
package slogbridge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/logger"
)

// Handler implements slog.Handler on top of a treelog Logger.
type Handler struct {
	logger *logger.Logger
	attrs  []slog.Attr
	group  string
}

// New creates a slog.Handler forwarding into l
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled reports whether any effective sink could admit the level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.LevelEnabled(toCore(level))
}

// Handle converts the slog record and emits it through the logger
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	// Pre-bound attrs were key-qualified when bound; only record attrs get
	// the current group prefix.
	for _, a := range h.attrs {
		appendAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	loc := sourceLocation(record)
	return h.logger.Output(toCore(record.Level), loc, "", b.String())
}

// WithAttrs returns a handler carrying additional pre-bound attributes,
// their keys qualified with the group active at bind time.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(next, h.attrs)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next = append(next, a)
	}
	return &Handler{logger: h.logger, attrs: next, group: h.group}
}

// WithGroup returns a handler qualifying subsequent attribute keys
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{logger: h.logger, attrs: h.attrs, group: group}
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value)
}

func sourceLocation(record slog.Record) core.Location {
	if record.PC == 0 {
		return core.Location{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
	return core.Location{
		File:     filepath.Base(frame.File),
		Function: frame.Function,
		Line:     frame.Line,
	}
}

// toCore maps slog's numeric levels onto treelog severities. slog defines
// nothing more severe than Error, so Fatal is never produced.
func toCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

package logger

import (
	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/sink"
)

// Builder provides a fluent API for constructing Logger instances
type Builder struct {
	category  string
	level     core.Level
	parent    *Logger
	policy    core.Policy
	policySet bool
	sinks     []sink.Sink
}

// NewBuilder creates a builder with category "root" and InfoLevel
func NewBuilder() *Builder {
	return &Builder{
		category: "root",
		level:    core.InfoLevel,
	}
}

// WithCategory sets the logger's category name
func (b *Builder) WithCategory(category string) *Builder {
	b.category = category
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithParent attaches the logger under parent at construction
func (b *Builder) WithParent(parent *Logger) *Builder {
	b.parent = parent
	return b
}

// WithPolicy selects the threading policy. Without an explicit policy the
// logger inherits its parent's, or MultiThreaded for a root.
func (b *Builder) WithPolicy(policy core.Policy) *Builder {
	b.policy = policy
	b.policySet = true
	return b
}

// WithSink attaches a sink at construction
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sinks = append(b.sinks, s)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	policy := b.policy
	if !b.policySet {
		policy = core.MultiThreaded
		if b.parent != nil {
			policy = b.parent.policy
		}
	}
	l := newLogger(b.category, b.level, b.parent, policy)
	for _, s := range b.sinks {
		l.AddSink(s)
	}
	return l
}

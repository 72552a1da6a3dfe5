package benchmark

import (
	"testing"

	"github.com/treelog/treelog/buffer"
	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/logger"
	"github.com/treelog/treelog/pattern"
	"github.com/treelog/treelog/sink"
)

func newNullLogger(b *testing.B, level core.Level) *logger.Logger {
	b.Helper()
	s, err := sink.NewNull(sink.Options{})
	if err != nil {
		b.Fatal(err)
	}
	return logger.NewBuilder().
		WithCategory("bench").
		WithLevel(level).
		WithSink(s).
		Build()
}

// The filtered-out path: no sink admits, so no formatting work happens.
func BenchmarkEmit_Filtered(b *testing.B) {
	l := newNullLogger(b, core.ErrorLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("filtered out")
	}
}

func BenchmarkEmit_FilteredLazyFunc(b *testing.B) {
	l := newNullLogger(b, core.ErrorLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.LogFunc(core.DebugLevel, func() string {
			return "never materialized"
		})
	}
}

func BenchmarkEmit_NullSink(b *testing.B) {
	l := newNullLogger(b, core.TraceLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkEmit_StreamSink(b *testing.B) {
	s, err := sink.NewStream(discardWriter{}, sink.Options{})
	if err != nil {
		b.Fatal(err)
	}
	l := logger.NewBuilder().
		WithCategory("bench").
		WithLevel(core.TraceLevel).
		WithSink(s).
		Build()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

// Emit through a three-deep tree where only the root owns the sink.
func BenchmarkEmit_Inherited(b *testing.B) {
	root := newNullLogger(b, core.TraceLevel)
	mid := logger.New("bench.mid", core.TraceLevel, root)
	leaf := logger.New("bench.mid.leaf", core.TraceLevel, mid)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		leaf.Info("info message")
	}
}

func BenchmarkPattern_Format(b *testing.B) {
	p, err := pattern.Compile(pattern.Default())
	if err != nil {
		b.Fatal(err)
	}
	rec := core.GetRecord(core.InfoLevel, core.Capture(0), "bench")
	rec.SetMessage("info message")
	defer core.PutRecord(rec)

	var buf buffer.Buffer
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		p.Format(&buf, rec)
	}
}

func BenchmarkPattern_Compile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := pattern.Compile(pattern.Default()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCachedFormatter_Hit(b *testing.B) {
	cf := buffer.NewCachedFormatter(func(dst []byte, v int64) []byte {
		return append(dst, "rendered"...)
	})
	var buf buffer.Buffer
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		cf.Format(&buf, 7)
	}
}

package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelog/treelog/buffer"
	"github.com/treelog/treelog/core"
)

func testRecord(level core.Level, msg string) *core.Record {
	rec := &core.Record{
		Level:    level,
		Loc:      core.Location{File: "main.go", Function: "main.run", Line: 42},
		Category: "app.db",
		ThreadID: 7,
		Time:     core.RecordTime{Unix: time.Date(2024, 5, 1, 12, 30, 45, 123456789, time.Local).Unix(), Nano: 123456789},
	}
	rec.SetMessage(msg)
	return rec
}

func render(t *testing.T, template string, rec *core.Record) string {
	t.Helper()
	p, err := Compile(template)
	require.NoError(t, err)
	var buf buffer.Buffer
	p.Format(&buf, rec)
	return buf.String()
}

func TestCompile_RoundTrip(t *testing.T) {
	got := render(t, "{level} {message}", testRecord(core.InfoLevel, "hi"))
	assert.Equal(t, "INFO hi", got)
}

func TestCompile_AllFields(t *testing.T) {
	rec := testRecord(core.ErrorLevel, "boom")
	assert.Equal(t, "app.db", render(t, "{category}", rec))
	assert.Equal(t, "main.go:42", render(t, "{file}:{line}", rec))
	assert.Equal(t, "main.run", render(t, "{function}", rec))
	assert.Equal(t, "7", render(t, "{thread}", rec))
	assert.Equal(t, "123", render(t, "{msec}", rec))
	assert.Equal(t, "123456", render(t, "{usec}", rec))
	assert.Equal(t, "123456789", render(t, "{nsec}", rec))
	assert.Equal(t, "12:30:45", render(t, "{time:15:04:05}", rec))
}

func TestCompile_UnknownPlaceholder(t *testing.T) {
	_, err := Compile("{bogus}")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlaceholder)
}

func TestCompile_Malformed(t *testing.T) {
	for _, template := range []string{"{message", "tail}", "{message:q}"} {
		_, err := Compile(template)
		assert.ErrorIs(t, err, ErrMalformed, "template %q", template)
	}
}

func TestCompile_EscapedBraces(t *testing.T) {
	got := render(t, "{{{message}}}", testRecord(core.InfoLevel, "x"))
	assert.Equal(t, "{x}", got)
}

func TestFormat_WidthAlignment(t *testing.T) {
	rec := testRecord(core.InfoLevel, "m")
	rec.Category = "abc"

	assert.Equal(t, "**abc", render(t, "{category:*>5}", rec))
	assert.Equal(t, "abc**", render(t, "{category:*<5}", rec))
	assert.Equal(t, "*abc*", render(t, "{category:*^5}", rec))
	// Width without alignment pads on the right with spaces.
	assert.Equal(t, "abc  ", render(t, "{category:5}", rec))
	// Over-length fields pass through unpadded, never truncated.
	assert.Equal(t, "abc", render(t, "{category:2}", rec))
}

func TestFormat_WidthCountsCodepoints(t *testing.T) {
	rec := testRecord(core.InfoLevel, "m")
	rec.Category = "äöü" // 3 codepoints, 6 bytes
	assert.Equal(t, "  äöü", render(t, "{category:>5}", rec))
}

func TestFormat_NumericSpecs(t *testing.T) {
	rec := testRecord(core.InfoLevel, "m")
	rec.Loc.Line = 42
	assert.Equal(t, "00042", render(t, "{line:05}", rec))
	assert.Equal(t, "   42", render(t, "{line:5}", rec))
	assert.Equal(t, "2a", render(t, "{line:x}", rec))
	assert.Equal(t, "2A", render(t, "{line:X}", rec))
}

func TestFormat_LevelPadding(t *testing.T) {
	got := render(t, "{level:<5}|", testRecord(core.InfoLevel, "m"))
	assert.Equal(t, "INFO |", got)
}

func TestSetLevels(t *testing.T) {
	p, err := Compile("{level}")
	require.NoError(t, err)

	names := core.DefaultLevelNames
	names[core.InfoLevel] = "information"
	p.SetLevels(names)

	var buf buffer.Buffer
	p.Format(&buf, testRecord(core.InfoLevel, "m"))
	assert.Equal(t, "information", buf.String())
}

func TestDefaultLevelNames(t *testing.T) {
	want := map[core.Level]string{
		core.TraceLevel:   "TRACE",
		core.DebugLevel:   "DEBUG",
		core.InfoLevel:    "INFO",
		core.WarningLevel: "WARN",
		core.ErrorLevel:   "ERROR",
		core.FatalLevel:   "FATAL",
	}
	for level, name := range want {
		got := render(t, "{level}", testRecord(level, "m"))
		assert.Equal(t, name, got)
	}
}

func TestDefault_Compiles(t *testing.T) {
	p, err := Compile(Default())
	require.NoError(t, err)

	var buf buffer.Buffer
	p.Format(&buf, testRecord(core.InfoLevel, "hello"))
	out := buf.String()
	assert.Contains(t, out, "INFO ")
	assert.Contains(t, out, "main.go:42")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, ".123 ") // zero-padded milliseconds
}

func TestFormat_TimeCachesWithinSecond(t *testing.T) {
	p, err := Compile("{time}")
	require.NoError(t, err)

	rec := testRecord(core.InfoLevel, "m")
	var a, b buffer.Buffer
	p.Format(&a, rec)
	rec.Time.Nano = 999999999 // same second, different sub-second part
	p.Format(&b, rec)
	assert.Equal(t, a.String(), b.String())
}

package slogbridge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/logger"
	"github.com/treelog/treelog/sink"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer, level core.Level) *logger.Logger {
	t.Helper()
	l := logger.New("slog", level, nil)
	s, err := sink.NewStream(buf, sink.Options{Pattern: "{level} {message}"})
	if err != nil {
		t.Fatal(err)
	}
	l.AddSink(s)
	return l
}

func TestHandler_Forwarding(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(t, &buf, core.DebugLevel)))

	log.Info("hello", "user", "ada", "attempts", 3)

	out := buf.String()
	if !strings.HasPrefix(out, "INFO hello") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "user=ada") || !strings.Contains(out, "attempts=3") {
		t.Errorf("attributes missing: %q", out)
	}
}

func TestHandler_LevelMapping(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(t, &buf, core.TraceLevel)))

	log.Debug("d")
	log.Warn("w")
	log.Error("e")

	out := buf.String()
	for _, want := range []string{"DEBUG d", "WARN w", "ERROR e"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := New(newTestLogger(t, &buf, core.WarningLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be disabled at Warning threshold")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled at Warning threshold")
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := New(newTestLogger(t, &buf, core.DebugLevel))
	log := slog.New(base).With("svc", "api").WithGroup("req").With("id", 7)

	log.Info("handled")

	out := buf.String()
	if !strings.Contains(out, "svc=api") {
		t.Errorf("pre-bound attr missing: %q", out)
	}
	if !strings.Contains(out, "req.id=7") {
		t.Errorf("group-qualified attr missing: %q", out)
	}
}

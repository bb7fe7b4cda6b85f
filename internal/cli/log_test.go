package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerRoundTripsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	ctx := withLogger(context.Background(), logger)
	got := loggerFromContext(ctx)

	got.Debug("attached logger")
	if !strings.Contains(buf.String(), "attached logger") {
		t.Error("context logger did not write to the attached buffer")
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext returned nil without an attached logger")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	p := newProgress(logger)
	p.done("Generated barcode")

	out := buf.String()
	if !strings.Contains(out, "Generated barcode") {
		t.Errorf("progress output %q missing message", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("progress output %q missing elapsed duration", out)
	}
}

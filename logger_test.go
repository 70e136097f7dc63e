package vg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("default logger is nil")
	}
	// Must not panic or emit anywhere.
	l.Debug("noop", "k", "v")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := NewImageBuffer(2, 2, PixelRGBA8); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "allocating image buffer") {
		t.Errorf("expected allocation log, got %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Logger().Debug("quiet")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

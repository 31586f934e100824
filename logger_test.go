package rgb

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected default logger to be disabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("hello", "pixel", NewRgb[uint8](1, 2, 3))
	if s := buf.String(); !strings.Contains(s, "pixel=rgb(1,2,3)") {
		t.Errorf("expected log to contain pixel, got %q", s)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected nil to restore the silent logger")
	}
}

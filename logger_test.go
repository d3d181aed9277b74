package bezier

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger is nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger shouldn't be enabled")
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Randomize(Rect{0, 0, 1, 1}, rand.New(rand.NewPCG(1, 1))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "randomized control points") {
		t.Errorf("expected debug output, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

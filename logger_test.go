package metaball

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes the package logger into a buffer at debug level for
// the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLogger_SilentByDefault(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() after SetLogger(nil) = nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled at %v", level)
		}
	}
	// Derived loggers stay silent too.
	if l.With("frame", 3).WithGroup("blob").Enabled(context.Background(), slog.LevelError) {
		t.Error("derived silent logger is enabled")
	}
}

func TestCompute_DoesNotLog(t *testing.T) {
	buf := captureLogs(t)

	Compute(Circ(0, 0, 20), Circ(30, 0, 12), 0.5)
	Compute(Circ(0, 0, 0), Circ(30, 0, 12), 0)
	Compute(Circ(5, 5, 8), Circ(5, 5, 8), 1)

	if buf.Len() != 0 {
		t.Errorf("Compute wrote log output: %s", buf.String())
	}
}

func TestSetLogger_ReplacesOutput(t *testing.T) {
	first := captureLogs(t)
	Logger().Info("frames written", "count", 4)

	var second bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&second, nil)))
	Logger().Info("frames written", "count", 8)

	if !strings.Contains(first.String(), "count=4") || strings.Contains(first.String(), "count=8") {
		t.Errorf("first logger output = %q", first.String())
	}
	if !strings.Contains(second.String(), "count=8") {
		t.Errorf("second logger output = %q", second.String())
	}
}

func TestSetLogger_ConcurrentWithCompute(t *testing.T) {
	captureLogs(t)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(nil)
				return
			}
			res := Compute(Circ(0, 0, 10), Circ(float64(i), 0, 10), 0.5)
			Logger().Debug("frame", "type", res)
		}()
	}
	wg.Wait()
}

func BenchmarkLogger_Disabled(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("frame", "t", 0.5)
	}
}

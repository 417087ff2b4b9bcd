package vox

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// Default logger must discard everything without formatting.
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled at all levels")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))

	SetLogger(custom)
	defer SetLogger(nil)

	Logger().Info("test message", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("expected log output to contain message, got %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected log output to contain attribute, got %q", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Info("should be discarded")
	if buf.Len() != 0 {
		t.Errorf("nil logger should restore silent default, got %q", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(newNopLogger())
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
	SetLogger(nil)
}

// Package testutil provides test utilities for structured logging.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// CapturedRecord is one log record with its attributes flattened.
type CapturedRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]slog.Value
}

// Capture holds the records written through a capture logger.
type Capture struct {
	mu      sync.Mutex
	records []CapturedRecord
}

// Records returns a copy of the captured records in write order.
func (c *Capture) Records() []CapturedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Find returns the first record with the given message.
func (c *Capture) Find(msg string) (CapturedRecord, bool) {
	for _, r := range c.Records() {
		if r.Message == msg {
			return r, true
		}
	}
	return CapturedRecord{}, false
}

// NewCaptureLogger returns a debug-level logger whose records are kept in
// memory for assertions.
func NewCaptureLogger() (*slog.Logger, *Capture) {
	c := &Capture{}
	return slog.New(&captureHandler{capture: c}), c
}

type captureHandler struct {
	capture *Capture
	attrs   []slog.Attr
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := CapturedRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]slog.Value, len(h.attrs)+r.NumAttrs()),
	}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value
		return true
	})

	h.capture.mu.Lock()
	h.capture.records = append(h.capture.records, rec)
	h.capture.mu.Unlock()
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{capture: h.capture, attrs: merged}
}

// WithGroup is a no-op; captured attributes are flat.
func (h *captureHandler) WithGroup(string) slog.Handler { return h }

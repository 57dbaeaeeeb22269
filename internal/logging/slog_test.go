package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *SlogLogger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(handler))
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)
	ctx := context.Background()

	log.Debug(ctx, "debug msg")
	log.Info(ctx, "info msg")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg", "err", "boom")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "debug msg")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "err=boom")
}

func TestSlogLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf).With("component", "session")

	log.Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "component=session")
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	log := NewNopLogger()
	ctx := context.Background()

	log.Debug(ctx, "msg")
	log.Info(ctx, "msg")
	log.Warn(ctx, "msg")
	log.Error(ctx, "msg")
	assert.NotNil(t, log.With("k", "v"))
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := context.Background()
	log.Debug(ctx, "dbg", "k", "v1")
	log.Info(ctx, "inf", "k", "v2")
	log.Warn(ctx, "wrn", "k", "v3")
	log.Error(ctx, "err", "k", "v4")

	out := buf.String()
	assert.Contains(t, out, "msg=dbg")
	assert.Contains(t, out, "msg=inf")
	assert.Contains(t, out, "msg=wrn")
	assert.Contains(t, out, "msg=err")
	assert.Contains(t, out, "k=v4")
}

func TestSlogLogger_WithAddsPersistentAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := log.With("component", "gateway")
	child.Info(context.Background(), "request sent")

	assert.Contains(t, buf.String(), "component=gateway")
}

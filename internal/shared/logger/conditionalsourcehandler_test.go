package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalSourceHandler_AddsSourceOnlyForConfiguredLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: false})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelWarn, slog.LevelError))

	log.Info("info message")
	infoLine := buf.String()
	buf.Reset()

	log.Warn("warn message")
	warnLine := buf.String()

	assert.NotContains(t, infoLine, slog.SourceKey)
	assert.Contains(t, warnLine, slog.SourceKey)
	assert.Contains(t, warnLine, "conditionalsourcehandler_test.go")
}

func TestConditionalSourceHandler_EnabledDelegates(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestConditionalSourceHandler_WithAttrsKeepsBehavior(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError).
		WithAttrs([]slog.Attr{slog.String("component", "workflow")}))

	log.Error("boom")
	line := buf.String()

	require.NotEmpty(t, line)
	assert.Contains(t, line, `"component":"workflow"`)
	assert.Contains(t, line, slog.SourceKey)
}

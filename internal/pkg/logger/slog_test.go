package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}

		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestNewStructuredLogger(t *testing.T) {
	t.Run("request_id_from_context", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
		log.InfoContext(ctx, "hello")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "hello", lines[0]["msg"])
		assert.Equal(t, "req-1", lines[0]["request_id"])
		assert.NotContains(t, lines[0], "stack_trace")
	})

	t.Run("stack_trace_on_error", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo)

		log.Error("failed")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0]["stack_trace"], "goroutine")
	})

	t.Run("level_filters_debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelWarn)

		log.Debug("hidden")
		log.Info("hidden too")

		assert.Empty(t, buf.String())
	})

	t.Run("debug_adds_source", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelDebug)

		log.Debug("visible")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "source")
	})

	t.Run("with_keeps_request_id", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewStructuredLogger(&buf, slog.LevelInfo).With(slog.String("component", "pricing"))

		ctx := context.WithValue(context.Background(), RequestIDKey, "req-2")
		log.InfoContext(ctx, "hello")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "pricing", lines[0]["component"])
		assert.Equal(t, "req-2", lines[0]["request_id"])
	})
}

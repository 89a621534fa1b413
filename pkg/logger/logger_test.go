package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campaignify/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return slog.String("request_id", id), ok && id != ""
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Level: "debug", Format: "json"}, &buf, requestID, nil)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With(slog.String("component", "test")).DebugContext(ctx, "hello", slog.Int("n", 2))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, "test", rec["component"])
		assert.InDelta(t, 2, rec["n"], 0)
	})

	t.Run("extractor without value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{}, &buf, requestID)
		require.NoError(t, err)

		log.InfoContext(context.Background(), "hello")
		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("text format and level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Level: "WARN", Format: "text"}, &buf)
		require.NoError(t, err)

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.True(t, strings.Contains(buf.String(), "msg=kept"))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := logger.New(logger.Config{Level: "loud"}, nil)
		require.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := logger.New(logger.Config{Format: "xml"}, nil)
		require.ErrorIs(t, err, logger.ErrInvalidFormat)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" Error ": slog.LevelError,
		"warn+2":  slog.LevelWarn + 2,
	}
	for in, expected := range tests {
		level, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, level, in)
	}
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

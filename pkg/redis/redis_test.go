package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, Config{URL: "  "}, nil)
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
		assert.Nil(t, client)
	})

	t.Run("invalid scheme", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{"http://localhost:6379", "localhost:6379", "postgres://localhost"} {
			client, err := Open(ctx, Config{URL: url}, nil)
			require.ErrorIs(t, err, ErrFailedToParseURL, url)
			assert.Nil(t, client)
		}
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()

		_, err := Open(ctx, Config{URL: "redis://localhost:6379/notadb"}, nil)
		require.ErrorIs(t, err, ErrFailedToParseURL)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()

		cfg := Config{
			URL:           "redis://127.0.0.1:1/0",
			DialTimeout:   50 * time.Millisecond,
			RetryAttempts: 2,
			RetryInterval: time.Millisecond,
		}
		_, err := Open(ctx, cfg, nil)
		require.ErrorIs(t, err, ErrConnectionFailed)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		cfg := Config{
			URL:           "redis://127.0.0.1:1/0",
			DialTimeout:   10 * time.Millisecond,
			RetryAttempts: 5,
			RetryInterval: time.Hour,
		}
		_, err := Open(ctx, cfg, nil)
		require.ErrorIs(t, err, ErrConnectionFailed)
	})
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	err := Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, ErrHealthcheckFailed)
}

type closer struct{ err error }

func (c closer) Close() error { return c.err }

func TestShutdown(t *testing.T) {
	t.Parallel()

	require.NoError(t, Shutdown(closer{})(context.Background()))

	boom := errors.New("boom")
	require.ErrorIs(t, Shutdown(closer{err: boom})(context.Background()), boom)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{URL: "redis://localhost"}.Enabled())
}

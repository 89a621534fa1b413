package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/internal/server"
)

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var hooks []string
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, server.New(campaignify.New()).Handler(),
			server.Listener(ln),
			server.ShutdownTimeout(5*time.Second),
			server.ShutdownHook(func(context.Context) error { hooks = append(hooks, "first"); return nil }),
			server.ShutdownHook(func(context.Context) error { hooks = append(hooks, "second"); return nil }),
		)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/health/live")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"first", "second"}, hooks)
}

func TestRun_HookErrors(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hookErr := errors.New("close failed")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = server.Run(ctx, http.NotFoundHandler(),
		server.Listener(ln),
		server.ShutdownHook(func(context.Context) error { return hookErr }),
	)
	require.ErrorIs(t, err, hookErr)
}

func TestRun_ListenError(t *testing.T) {
	t.Parallel()

	err := server.Run(context.Background(), http.NotFoundHandler(), server.Address("127.0.0.1:-1"))
	require.Error(t, err)
}

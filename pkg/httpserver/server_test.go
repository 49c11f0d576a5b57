package httpserver_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/pkg/httpserver"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
)

// start runs srv on a free port and waits until it is listening.
func start(t *testing.T, ctx context.Context, srv *httpserver.Server, started <-chan struct{}, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "run returned early", "%v", err)
	case <-time.After(time.Second):
		require.FailNow(t, "server did not start")
	}
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
		return nil
	}
}

func readyHook() (httpserver.Option, <-chan struct{}) {
	ch := make(chan struct{})
	return httpserver.WithStartHook(func(*slog.Logger) { close(ch) }), ch
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Parallel()
	hook, started := readyHook()
	var buf bytes.Buffer
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithLogger(logger.New(logger.WithOutput(&buf), logger.WithTextFormatter())),
		hook,
	)
	assert.Nil(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := start(t, ctx, srv, started, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "hola")
	}))

	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "hola", string(body))

	cancel()
	require.NoError(t, wait(t, done))
	require.NoError(t, srv.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "http server listening")
	assert.Contains(t, buf.String(), "component=httpserver")
	assert.Contains(t, buf.String(), "http server stopped")
}

func TestRun_NilHandler(t *testing.T) {
	t.Parallel()
	hook, started := readyHook()
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), hook)
	done := start(t, context.Background(), srv, started, nil)

	resp, err := http.Get("http://" + srv.Addr().String() + "/anything")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
}

func TestRun_StartError(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestRun_AlreadyRunning(t *testing.T) {
	t.Parallel()
	hook, started := readyHook()
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"), hook)
	done := start(t, context.Background(), srv, started, http.NewServeMux())

	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	t.Run("before run", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, httpserver.New().Shutdown(context.Background()))
	})

	t.Run("repeated calls run stop hooks once", func(t *testing.T) {
		t.Parallel()
		hook, started := readyHook()
		stops := 0
		srv := httpserver.New(
			httpserver.WithAddr("127.0.0.1:0"),
			httpserver.WithShutdownTimeout(50*time.Millisecond),
			httpserver.WithStopHook(func(*slog.Logger) { stops++ }),
			hook,
		)
		done := start(t, context.Background(), srv, started, http.NewServeMux())

		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, wait(t, done))
		assert.Equal(t, 1, stops)
	})
}

// Not parallel: the signal reaches every server in the process.
func TestRun_SignalShutdown(t *testing.T) {
	sink := make(chan os.Signal, 1)
	signal.Notify(sink, syscall.SIGTERM)
	defer signal.Stop(sink)

	hook, started := readyHook()
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		hook,
	)
	done := start(t, context.Background(), srv, started, http.NewServeMux())

	// The signal handler is installed just after the start hook, so retry.
	for range 40 {
		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
		select {
		case err := <-done:
			require.NoError(t, err)
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
	require.FailNow(t, "run did not stop on SIGTERM")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	hook, started := readyHook()
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, hook)
	done := start(t, context.Background(), srv, started, http.NewServeMux())
	assert.Contains(t, srv.Addr().String(), "127.0.0.1:")
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, wait(t, done))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read header", func() { httpserver.WithReadHeaderTimeout(0) }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

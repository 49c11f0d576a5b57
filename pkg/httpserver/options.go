package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	startHooks        []func(*slog.Logger)
	stopHooks         []func(*slog.Logger)
}

func positive(name string, d time.Duration) {
	if d <= 0 {
		panic(name + ": duration must be > 0")
	}
}

// WithAddr sets the address the server listens on. Port 0 picks a free port.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

// WithReadHeaderTimeout bounds the time to read request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	positive("WithReadHeaderTimeout", d)
	return func(o *options) { o.readHeaderTimeout = d }
}

// WithReadTimeout bounds the time to read the entire request.
func WithReadTimeout(d time.Duration) Option {
	positive("WithReadTimeout", d)
	return func(o *options) { o.readTimeout = d }
}

// WithWriteTimeout bounds the time to write the response.
func WithWriteTimeout(d time.Duration) Option {
	positive("WithWriteTimeout", d)
	return func(o *options) { o.writeTimeout = d }
}

// WithIdleTimeout bounds the wait for the next keep-alive request.
func WithIdleTimeout(d time.Duration) Option {
	positive("WithIdleTimeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout sets the time allowed for draining requests.
func WithShutdownTimeout(d time.Duration) Option {
	positive("WithShutdownTimeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger. Nil discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStartHook registers a callback that runs once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("WithStopHook: nil hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}

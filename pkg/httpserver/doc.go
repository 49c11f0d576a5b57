// Package httpserver runs the site's HTTP server with graceful shutdown.
//
// Server binds its listener in Run, serves until the context is cancelled,
// an interrupt or TERM signal arrives, or Shutdown is called, and then drains
// in-flight requests within the configured shutdown timeout. Start and stop
// hooks receive the server logger.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Health returns a probe handler: with no checks it answers ALIVE, otherwise
// READY when every check passes and NOT_READY with status 503 when one fails.
package httpserver

// Package logger builds the *slog.Logger instances used across the site:
// the browser client (text output to the console) and the HTTP server (JSON
// in production).
//
// New applies functional options and wraps the chosen slog.Handler with
// LogHandlerDecorator, which injects attributes pulled from context (for
// example the request id) on every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "clinicsite"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "rate limit exceeded",
//		logger.Component("ratelimiter"),
//		logger.Action("form-booking"),
//	)
//
// # Attributes
//
// Helper constructors in attr.go keep attribute keys consistent. Error and
// Errors return an empty slog.Attr for nil errors, so they can be passed
// unconditionally:
//
//	log.Info("feature ready", logger.Feature("carousel"), logger.Error(err))
package logger

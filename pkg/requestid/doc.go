// Package requestid tags each HTTP request with an identifier.
//
// The middleware accepts a well formed X-Request-ID from the client,
// otherwise generates a UUID, echoes it in the response header and stores
// it in the request context. LoggerExtractor adds it to every log record
// written with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware())
package requestid

// Package clientip resolves the visitor address of an HTTP request behind
// proxies and carries it through the request context and logs.
//
//	r.Use(clientip.Middleware())
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip

// Package metrics exposes Prometheus metrics for the site server.
//
// Metrics are registered on a caller supplied registry so tests and
// multiple servers never collide on the global one. Middleware records
// request counts, latency and response sizes labelled by the chi route
// pattern, which keeps label cardinality bounded for static asset paths.
package metrics

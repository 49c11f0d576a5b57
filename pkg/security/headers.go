package security

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultCSP allows the site's own assets, the wasm runtime, inline styles
// set by the page scripts, the icon font CDN and data: images.
const DefaultCSP = "default-src 'self'; " +
	"script-src 'self' 'wasm-unsafe-eval'; " +
	"style-src 'self' 'unsafe-inline' https://cdnjs.cloudflare.com; " +
	"font-src 'self' https://cdnjs.cloudflare.com; " +
	"img-src 'self' data:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'; " +
	"base-uri 'self'; " +
	"form-action 'self'"

// DefaultHSTSMaxAge is one year.
const DefaultHSTSMaxAge = 365 * 24 * time.Hour

type options struct {
	csp        string
	hsts       bool
	hstsMaxAge time.Duration
}

// Option configures Headers.
type Option func(*options)

// WithCSP replaces the content security policy. Empty omits the header.
func WithCSP(policy string) Option {
	return func(o *options) { o.csp = strings.TrimSpace(policy) }
}

// WithHSTS enables Strict-Transport-Security on TLS requests.
func WithHSTS(maxAge time.Duration) Option {
	return func(o *options) {
		o.hsts = maxAge > 0
		o.hstsMaxAge = maxAge
	}
}

// Headers returns middleware that sets the security headers on every response.
func Headers(opts ...Option) func(http.Handler) http.Handler {
	o := options{csp: DefaultCSP}
	for _, opt := range opts {
		opt(&o)
	}
	hsts := "max-age=" + strconv.FormatInt(int64(o.hstsMaxAge/time.Second), 10) + "; includeSubDomains"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			if o.csp != "" {
				h.Set("Content-Security-Policy", o.csp)
			}
			if o.hsts && isTLS(r) {
				h.Set("Strict-Transport-Security", hsts)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// isTLS reports whether the client connection is HTTPS, directly or through
// a proxy that sets X-Forwarded-Proto.
func isTLS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

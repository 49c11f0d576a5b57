// Package security sets the response headers that back the page's own
// defenses: framing is refused with X-Frame-Options and frame-ancestors,
// script and style sources are restricted by a content security policy,
// and HSTS is sent when the site is served over TLS.
package security

// Package web assembles the HTTP routes that serve the page: the rendered
// shell, static assets, the WhatsApp QR code, probes and metrics.
package web

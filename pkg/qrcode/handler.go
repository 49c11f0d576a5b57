package qrcode

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
)

// Handler serves a pre-rendered PNG with an ETag so clients can revalidate.
type Handler struct {
	png  []byte
	etag string
}

// NewHandler renders content once and returns a handler serving it.
func NewHandler(content string, size int) (*Handler, error) {
	png, err := Generate(content, size)
	if err != nil {
		return nil, err
	}
	return newHandler(png), nil
}

// NewWhatsAppHandler serves the chat link QR for number.
func NewWhatsAppHandler(number, greeting string, size int) (*Handler, error) {
	png, _, err := WhatsApp(number, greeting, size)
	if err != nil {
		return nil, err
	}
	return newHandler(png), nil
}

func newHandler(png []byte) *Handler {
	sum := sha256.Sum256(png)
	return &Handler{png: png, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.etag)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if r.Header.Get("If-None-Match") == h.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.png)))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(h.png)
}

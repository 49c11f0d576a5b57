package web_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clinicsite/internal/web"
	"github.com/dmitrymomot/clinicsite/pkg/clientip"
	"github.com/dmitrymomot/clinicsite/pkg/environment"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/metrics"
	"github.com/dmitrymomot/clinicsite/pkg/requestid"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
)

func assets() fstest.MapFS {
	return fstest.MapFS{
		"body.html":             {Data: []byte(`<header id="header"></header>`)},
		"static/css/styles.css": {Data: []byte("body{margin:0}")},
		"static/site.wasm":      {Data: []byte("\x00asm")},
	}
}

func newRouter(t *testing.T, fsys fstest.MapFS, env environment.Environment) (http.Handler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	h, err := web.NewRouter(web.Deps{
		Log:     logger.Discard(),
		Env:     env,
		Site:    siteconfig.Default(),
		Assets:  fsys,
		Metrics: m,
		Title:   "Clínica",
		QRSize:  128,
	})
	require.NoError(t, err)
	return h, m
}

func get(h http.Handler, target string, hdr ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_Errors(t *testing.T) {
	t.Parallel()

	_, err := web.NewRouter(web.Deps{Metrics: metrics.New()})
	assert.ErrorIs(t, err, web.ErrNoAssets)

	_, err = web.NewRouter(web.Deps{Assets: assets()})
	assert.ErrorIs(t, err, web.ErrNoMetrics)

	missing := assets()
	delete(missing, "body.html")
	_, err = web.NewRouter(web.Deps{Assets: missing, Metrics: metrics.New()})
	assert.Error(t, err)
}

func TestRouter_Page(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, assets(), environment.Development)

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `<html lang="es-MX">`)
	assert.Contains(t, body, "<title>Clínica</title>")
	assert.Contains(t, body, `<header id="header"></header>`)
	assert.Contains(t, body, `data-wasm="/static/site.wasm"`)
}

func TestRouter_Static(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, assets(), environment.Development)

	rec := get(h, "/static/css/styles.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{margin:0}", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(h, "/static/missing.js").Code)
}

func TestRouter_QRCode(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, assets(), environment.Development)

	rec := get(h, "/qr/whatsapp.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, http.StatusNotModified, get(h, "/qr/whatsapp.png", "If-None-Match", etag).Code)
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()

	h, _ := newRouter(t, assets(), environment.Development)
	assert.Equal(t, "ALIVE", get(h, "/healthz").Body.String())
	assert.Equal(t, "READY", get(h, "/readyz").Body.String())

	noWasm := assets()
	delete(noWasm, "static/site.wasm")
	h, _ = newRouter(t, noWasm, environment.Development)
	rec := get(h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT_READY", rec.Body.String())
}

func TestRouter_HSTS(t *testing.T) {
	t.Parallel()

	dev, _ := newRouter(t, assets(), environment.Development)
	assert.Empty(t, get(dev, "/", "X-Forwarded-Proto", "https").Header().Get("Strict-Transport-Security"))

	prod, _ := newRouter(t, assets(), environment.Production)
	assert.Empty(t, get(prod, "/").Header().Get("Strict-Transport-Security"))
	assert.Contains(t, get(prod, "/", "X-Forwarded-Proto", "https").Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

func TestRouter_AccessLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	h, err := web.NewRouter(web.Deps{
		Log:     log,
		Site:    siteconfig.Default(),
		Assets:  assets(),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)

	get(h, "/static/css/styles.css", "X-Real-IP", "198.51.100.3", "X-Request-ID", "req-1")

	out := buf.String()
	assert.Contains(t, out, `msg="request served"`)
	assert.Contains(t, out, "route=/static/*")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "client_ip=198.51.100.3")
	assert.Contains(t, out, "request_id=req-1")
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()
	h, m := newRouter(t, assets(), environment.Development)
	m.SetBuildInfo("v1", "es-MX", "continuous")

	get(h, "/")
	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clinicsite_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `clinicsite_build_info{carousel="continuous",locale="es-MX",version="v1"} 1`)
}

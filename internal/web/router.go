package web

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clinicsite/pkg/clientip"
	"github.com/dmitrymomot/clinicsite/pkg/environment"
	"github.com/dmitrymomot/clinicsite/pkg/httpserver"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/metrics"
	"github.com/dmitrymomot/clinicsite/pkg/qrcode"
	"github.com/dmitrymomot/clinicsite/pkg/requestid"
	"github.com/dmitrymomot/clinicsite/pkg/security"
	"github.com/dmitrymomot/clinicsite/pkg/shell"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
)

// Asset layout inside Deps.Assets.
const (
	BodyFile  = "body.html"
	StaticDir = "static"
)

// Stylesheets linked from every page.
var Stylesheets = []string{
	"/static/css/styles.css",
	"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css",
}

// Deps are the collaborators of the router.
type Deps struct {
	Log     *slog.Logger
	Env     environment.Environment
	Site    siteconfig.Config
	Assets  fs.FS
	Metrics *metrics.Metrics

	Title       string
	Description string
	QRSize      int
}

// NewRouter builds the site handler.
func NewRouter(d Deps) (http.Handler, error) {
	if d.Assets == nil {
		return nil, ErrNoAssets
	}
	if d.Metrics == nil {
		return nil, ErrNoMetrics
	}
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	log := d.Log.With(logger.Component("web"))

	body, err := shell.BodyFile(d.Assets, BodyFile)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(d.Assets, StaticDir)
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.NewWhatsAppHandler(d.Site.WhatsApp.Number, d.Site.WhatsApp.Greeting, d.QRSize)
	if err != nil {
		return nil, err
	}

	headers := []security.Option{}
	if d.Env.IsProduction() {
		headers = append(headers, security.WithHSTS(security.DefaultHSTSMaxAge))
	}

	page := shell.Page(shell.Props{
		Lang:        d.Site.Lang(),
		Title:       d.Title,
		Description: d.Description,
		Stylesheets: Stylesheets,
		Body:        body,
	})

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(),
		clientip.Middleware(),
		accessLog(log),
		d.Metrics.Middleware,
		security.Headers(headers...),
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "page render failed", logger.Error(err))
		}
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	r.Method(http.MethodGet, "/qr/whatsapp.png", qr)
	r.Method(http.MethodHead, "/qr/whatsapp.png", qr)
	r.Get("/healthz", httpserver.Health(log))
	r.Get("/readyz", httpserver.Health(log, httpserver.Check{
		Name: "assets",
		Fn:   assetsCheck(d.Assets),
	}))
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	return r, nil
}

// assetsCheck fails when the page markup or the wasm binary is missing.
func assetsCheck(assets fs.FS) func(context.Context) error {
	return func(context.Context) error {
		var errs []error
		for _, name := range []string{BodyFile, StaticDir + "/site.wasm"} {
			if _, err := fs.Stat(assets, name); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

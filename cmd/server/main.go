// Command server serves the clinic site.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/clinicsite/internal/web"
	"github.com/dmitrymomot/clinicsite/pkg/clientip"
	"github.com/dmitrymomot/clinicsite/pkg/config"
	"github.com/dmitrymomot/clinicsite/pkg/environment"
	"github.com/dmitrymomot/clinicsite/pkg/httpserver"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/metrics"
	"github.com/dmitrymomot/clinicsite/pkg/requestid"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env.String(), "clinicsite"),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	site := siteconfig.Default()
	if cfg.SiteConfig != "" {
		loaded, err := siteconfig.Load(cfg.SiteConfig)
		if err != nil {
			return err
		}
		site = loaded
	}

	m := metrics.New()
	m.SetBuildInfo(cfg.Version, site.Lang(), string(site.Presentation()))

	handler, err := web.NewRouter(web.Deps{
		Log:         log,
		Env:         env,
		Site:        site,
		Assets:      os.DirFS(cfg.WebDir),
		Metrics:     m,
		Title:       cfg.Title,
		Description: cfg.Description,
		QRSize:      cfg.QRSize,
	})
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}

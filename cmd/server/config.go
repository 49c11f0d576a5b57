package main

import "github.com/dmitrymomot/clinicsite/pkg/httpserver"

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Version string `env:"APP_VERSION" envDefault:"dev"`

	// WebDir holds body.html and the static/ tree.
	WebDir string `env:"SITE_WEB_DIR" envDefault:"web"`
	// SiteConfig is an optional YAML file overlaid on the embedded defaults.
	SiteConfig  string `env:"SITE_CONFIG"`
	Title       string `env:"SITE_TITLE" envDefault:"Clínica | Agenda tu cita"`
	Description string `env:"SITE_DESCRIPTION"`
	QRSize      int    `env:"SITE_QR_SIZE" envDefault:"256"`

	HTTP httpserver.Config
}

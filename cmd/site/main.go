//go:build js && wasm

// Command site is the WebAssembly entry point that drives the page.
package main

import (
	"context"
	"os"
	"syscall/js"

	"github.com/dmitrymomot/clinicsite/internal/bridge"
	"github.com/dmitrymomot/clinicsite/internal/jsdom"
	"github.com/dmitrymomot/clinicsite/pkg/logger"
	"github.com/dmitrymomot/clinicsite/pkg/siteconfig"
	"github.com/dmitrymomot/clinicsite/pkg/ui"
)

func main() {
	log := logger.New(
		logger.WithOutput(os.Stdout),
		logger.WithTextFormatter(),
		logger.WithAttr(logger.Component("site")),
	)

	site, err := ui.New(jsdom.NewDocument(), jsdom.NewWindow(), siteconfig.Default(), ui.WithLogger(log))
	if err != nil {
		log.Error("site setup failed", logger.Error(err))
		return
	}
	utils, err := bridge.New(site.Limiter())
	if err != nil {
		log.Error("security utils setup failed", logger.Error(err))
		return
	}

	// Published before Init so scripts that run during start-up can use it.
	js.Global().Set("SecurityUtils", securityUtils(utils, log))

	if err := site.Init(context.Background()); err != nil {
		log.Warn("site started with errors", logger.Error(err))
	}

	select {}
}

// Package config loads process configuration from environment variables
// into typed structs.
//
// Values come from the process environment, optionally seeded from one or
// more .env files with LoadEnv. Structs are described with
// github.com/caarlos0/env/v11 tags:
//
//	type Config struct {
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//		WebDir string `env:"SITE_WEB_DIR" envDefault:"web"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each struct type is parsed once per process and served from a cache
// afterwards. Tests that change the environment call ResetCache.
package config

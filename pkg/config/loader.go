package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read on the first Load when present.
const DefaultEnvFile = ".env"

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache       sync.Map // reflect.Type -> *entry
	defaultOnce sync.Once
)

// LoadEnv reads the named .env files into the process environment. Later
// files override earlier ones and the files override variables that are
// already set. With no paths the default file is read if it exists.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		paths = []string{DefaultEnvFile}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}

// Load parses the environment into v. The first successful parse of a type
// is cached; later calls copy the cached value. Failed parses are not cached.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultOnce.Do(func() { _ = LoadEnv() })

	key := reflect.TypeFor[T]()
	raw, _ := cache.LoadOrStore(key, &entry{})
	e := raw.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		cache.CompareAndDelete(key, e)
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load that panics on error, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every parsed configuration.
func ResetCache() {
	cache.Clear()
}

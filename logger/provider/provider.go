// Package provider implements logger.Provider sources: fixed values,
// environment variables, and TOML or YAML files with optional hot reload.
package provider

import (
	"os"

	"github.com/mordilloSan/go-labellog/logger"
)

// EnvLevel is the environment variable read by Env when no name is given.
const EnvLevel = "LOGGER_LEVEL"

// Static returns a provider that always returns cfg.
func Static(cfg logger.Config) logger.Provider {
	return func() logger.Config { return cfg }
}

// Env returns a provider that reads the level from the named environment
// variable on every call. An unset or empty variable keeps the default
// level; an unrecognized value permits everything.
func Env(name string) logger.Provider {
	if name == "" {
		name = EnvLevel
	}
	return func() logger.Config {
		l, _ := logger.ParseLevel(os.Getenv(name))
		return logger.Config{LogLevel: l}
	}
}

// Chain returns a provider that calls each provider once, in order, and
// lets later fields override earlier ones.
func Chain(providers ...logger.Provider) logger.Provider {
	return func() logger.Config {
		var cfg logger.Config
		for _, p := range providers {
			if p == nil {
				continue
			}
			cfg = cfg.Merge(p())
		}
		return cfg
	}
}

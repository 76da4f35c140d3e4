// Package config maps environment variables into the server's runtime
// configuration. Loaded once at startup and passed to components by value;
// nothing reads the environment after that.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the reviews API server.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// RedisURL is the connection string for the review store,
	// e.g. redis://localhost:6379/0.
	RedisURL string `env:"REDIS_URL,required"`

	// DataDir holds the tournament dataset files.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// ExtraOrigins is a comma-separated list of additional allowed CORS
	// origins. The API itself is open; this only matters behind proxies
	// that reflect origins.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// LogLevel selects the minimum log level (DEBUG, INFO, WARN, ERROR).
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses environment variables into a Config. It fails when a
// required variable is missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

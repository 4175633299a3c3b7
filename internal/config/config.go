package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adpaas/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Debug allows error details in responses to requests that ask for
	// them with ?debug=1. Keep it off in production.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures bearer token verification (AUTH_ prefix).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Doc configures PDF export (DOC_ prefix).
	Doc configs.Document `envPrefix:"DOC_"`

	// OTel configures tracing export (OTEL_ prefix).
	OTel configs.Tracing `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; variables
// already set in the environment win over it. If parsing fails, an error is
// returned.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

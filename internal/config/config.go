// Package config loads runtime settings for the storefront collaborators
// from environment variables, optionally seeded from a .env file.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/shopflow/storekit/pkg/apperr"
)

// Config aggregates all runtime settings.
type Config struct {
	// Catalog API
	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://dummyjson.com"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	PageLimit      int           `env:"PAGE_LIMIT" envDefault:"20"`

	// Redis cache
	CacheEnabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"console"`
}

// Load parses environment variables into a Config. Parse and validation
// faults come back as configuration-layer taxonomy errors.
func Load() (*Config, apperr.AppError) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperr.NewConfig("parse environment", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() apperr.AppError {
	if c.CatalogBaseURL == "" {
		return apperr.NewMissingConfig("catalog base URL is required", "CATALOG_BASE_URL")
	}
	if c.CacheEnabled && c.RedisAddr == "" {
		return apperr.NewMissingConfig("redis address is required when the cache is enabled", "REDIS_ADDR")
	}
	return nil
}

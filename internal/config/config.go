// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

// Package config loads and validates application configuration.
//
// Configuration is layered via Koanf v2 (highest priority wins):
//   - Environment variables (MONGO_URI, SERVER_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, path overridable via CONFIG_PATH)
//   - Built-in defaults
//
// MONGO_URI has no default and is required: without it the process must not
// start serving.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMongoURIRequired is returned when no store connection string is
// configured. main treats it as fatal before the server starts.
var ErrMongoURIRequired = errors.New("MONGO_URI is required (set it in the environment or config file)")

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Security  SecurityConfig  `koanf:"security"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MongoConfig holds document store settings. The URI is the only setting
// without a usable default.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database" validate:"required"`
	Collection     string        `koanf:"collection" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// SecurityConfig holds the CORS policy applied to /api routes.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
	CORSMaxAge  int      `koanf:"cors_max_age"`
}

// RateLimitConfig holds IP rate limiting settings for the API routes.
type RateLimitConfig struct {
	Disabled bool          `koanf:"disabled"`
	Requests int           `koanf:"requests" validate:"min=1"`
	Window   time.Duration `koanf:"window"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Mongo: MongoConfig{
			URI:            "", // No default: absence is a fatal startup condition
			Database:       "tmdb_nosql",
			Collection:     "movies",
			ConnectTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
			CORSMaxAge:  86400,
		},
		RateLimit: RateLimitConfig{
			Disabled: false,
			Requests: 1000,
			Window:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// validate is the shared validator instance; struct metadata is cached after
// the first call.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for startup-blocking problems.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return ErrMongoURIRequired
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid configuration: %s failed %q validation", f.Namespace(), f.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

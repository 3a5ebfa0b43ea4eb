// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package config

import (
	"errors"
	"testing"
	"time"
)

// Tests use t.Setenv, which also guards against parallel env mutation.

// TestLoad_MissingMongoURI tests the fatal startup condition
func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded without MONGO_URI")
	}
	if !errors.Is(err, ErrMongoURIRequired) {
		t.Errorf("err = %v, want ErrMongoURIRequired", err)
	}
}

// TestLoad_Defaults tests the built-in defaults with only the URI supplied
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Mongo.Database != "tmdb_nosql" {
		t.Errorf("database = %q, want tmdb_nosql", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "movies" {
		t.Errorf("collection = %q, want movies", cfg.Mongo.Collection)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.RateLimit.Requests != 1000 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("rate limit = %d/%v, want 1000/1m", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
}

// TestLoad_EnvOverrides tests that environment variables win over defaults
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.example.com:27017")
	t.Setenv("MONGO_DATABASE", "films")
	t.Setenv("MONGO_COLLECTION", "catalog")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://a.example.com, http://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Mongo.Database != "films" {
		t.Errorf("database = %q, want films", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "catalog" {
		t.Errorf("collection = %q, want catalog", cfg.Mongo.Collection)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("cors origins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
	if cfg.Security.CORSOrigins[0] != "http://a.example.com" || cfg.Security.CORSOrigins[1] != "http://b.example.com" {
		t.Errorf("cors origins = %v", cfg.Security.CORSOrigins)
	}
}

// TestLoad_InvalidPort tests validation of out-of-range values
func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SERVER_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted port 99999")
	}
}

// TestValidate tests struct validation directly
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing uri", mutate: func(c *Config) { c.Mongo.URI = "" }, wantErr: true},
		{name: "empty database", mutate: func(c *Config) { c.Mongo.Database = "" }, wantErr: true},
		{name: "empty collection", mutate: func(c *Config) { c.Mongo.Collection = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.Requests = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.Mongo.URI = "mongodb://localhost:27017"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() succeeded, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

// TestEnvTransformFunc tests the environment variable mapping
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		expected string
	}{
		{key: "MONGO_URI", expected: "mongo.uri"},
		{key: "HTTP_PORT", expected: "server.port"},
		{key: "SERVER_PORT", expected: "server.port"},
		{key: "LOG_LEVEL", expected: "logging.level"},
		{key: "PATH", expected: ""},
		{key: "HOME", expected: ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.expected {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

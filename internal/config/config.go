// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-square binaries. It aggregates all sub-configurations and is populated
// by merging defaults, a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Square holds the credentials and transport settings of the Square
	// API client.
	Square Square `envPrefix:"SQUARE_"`

	// Storage holds the payment-attempt ledger database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the example server's listen address, timeouts, static
	// files and CORS settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the background jobs of the example server.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Square configures the Square API client.
type Square struct {
	// AccessToken is the bearer token of the Square application. Sandbox
	// and production tokens are not interchangeable.
	// Env: SQUARE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Environment is "sandbox" or "production".
	// Env: SQUARE_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version pins the Square-Version header (e.g. "2024-01-18").
	// Env: SQUARE_VERSION
	Version string `env:"VERSION"`

	// BaseURL overrides the environment's API root. Used for proxies and
	// local fakes.
	// Env: SQUARE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds one HTTP attempt (e.g. "10s").
	// Env: SQUARE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// MaxRetries is the number of retries after a failed attempt. Zero keeps
	// the client default, a negative value disables retries.
	// Env: SQUARE_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// LocationID is the default location payments are taken at.
	// Env: SQUARE_LOCATION_ID
	LocationID string `env:"LOCATION_ID"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the payment-attempt ledger.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL through pgx, anything else is a SQLite file path
	// (e.g. "ledger.db" or "file:ledger.db?cache=shared").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory served under "/" (the checkout page).
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// AllowedOrigins lists the CORS origins allowed to call /api.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Workers configures the stale-PENDING sweeper of the example server.
type Workers struct {
	// PendingSweepInterval is how often PENDING attempts are checked. Zero
	// disables the sweeper.
	// Env: WORKERS_PENDING_SWEEP_INTERVAL
	PendingSweepInterval time.Duration `env:"PENDING_SWEEP_INTERVAL"`

	// PendingMaxAge is how old a PENDING attempt must be before its payment
	// is canceled by idempotency key.
	// Env: WORKERS_PENDING_MAX_AGE
	PendingMaxAge time.Duration `env:"PENDING_MAX_AGE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults are the values used for every field no source sets.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Square: Square{
			Environment: "sandbox",
			Timeout:     30 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "ledger.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			StaticDir:      "web",
		},
		Workers: Workers{PendingMaxAge: 10 * time.Minute},
		Log:     Log{Level: "info"},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Variables from a .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

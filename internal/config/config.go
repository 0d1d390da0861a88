// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session signing key,
	// session lifetime, password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and cookie settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// App holds application-level configuration values that control security,
// session lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionDuration specifies how long a session stays valid after login
	// (e.g. "24h", "30m"). It bounds both the token and the server-side record.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// BcryptCost is the work factor used when hashing passwords (4..31).
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// HashKey is the HMAC key used for request/response integrity headers
	// (HashSHA256). Integrity checks are disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level name that is emitted.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// RevealForeignNotes switches the ownership policy: when true, reading,
	// updating or deleting another user's note yields 403 instead of 404.
	// Env: APP_REVEAL_FOREIGN_NOTES
	RevealForeignNotes bool `env:"REVEAL_FOREIGN_NOTES"`
}

// Server holds network, timeout and cookie settings for the inbound
// transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CookieName is the name of the session cookie.
	// Env: SERVER_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecure marks the session cookie Secure (HTTPS only).
	// Env: SERVER_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path
	// (":memory:" for a throwaway database).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the connection pool. SQLite always uses one.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Sessions holds the session store settings.
type Sessions struct {
	// RedisURL, when set, stores sessions in Redis
	// (e.g. "redis://:password@localhost:6379/0"). Sessions are kept in
	// process memory otherwise.
	// Env: STORAGE_SESSIONS_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetStorageConfig loads configuration from the same sources as
// GetStructuredConfig but only validates the storage section. It serves
// maintenance tools such as the seeder that never sign sessions.
func GetStorageConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		withValidation((*StructuredConfig).validateStorage).
		build()
}

// GetServerConfig is GetStorageConfig for the server section.
func GetServerConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		withValidation((*StructuredConfig).validateServer).
		build()
}

package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultDSN             = "notes.db"
	defaultTokenIssuer     = "go-note-keeper"
	defaultSessionDuration = 24 * time.Hour
	defaultBcryptCost      = 10
	defaultVersion         = "1.0.0"
	defaultLogLevel        = "debug"
	defaultRequestTimeout  = 30 * time.Second
	defaultCookieName      = "session"
	defaultMaxOpenConns    = 10
)

// defaultConfig returns the lowest-priority configuration source. The token
// sign key has no default and must always be provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     defaultTokenIssuer,
			SessionDuration: defaultSessionDuration,
			BcryptCost:      defaultBcryptCost,
			Version:         defaultVersion,
			LogLevel:        defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          defaultDSN,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			CookieName:     defaultCookieName,
		},
	}
}

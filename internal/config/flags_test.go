package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host binds all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "too many colons", input: "a:b:c", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "port out of range", input: "localhost:70000", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "bad host", input: "example.com:80", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				assert.Equal(t, NetAddress{}, addr, "address must stay untouched on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "server and storage flags",
			args: []string{"-a", "localhost:9000", "-d", "postgres://u:p@h/db", "-redis-url", "redis://r:6379/1", "-request-timeout", "5s"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "postgres://u:p@h/db", cfg.Storage.DB.DSN)
				assert.Equal(t, "redis://r:6379/1", cfg.Storage.Sessions.RedisURL)
			},
		},
		{
			name: "app flags",
			args: []string{
				"-token-sign-key", "k", "-token-issuer", "iss", "-session-duration", "2h",
				"-bcrypt-cost", "6", "-hash-key", "hk", "-version", "2.0.0", "-log-level", "warn",
				"-reveal-foreign-notes",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "k", cfg.App.TokenSignKey)
				assert.Equal(t, "iss", cfg.App.TokenIssuer)
				assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
				assert.Equal(t, 6, cfg.App.BcryptCost)
				assert.Equal(t, "hk", cfg.App.HashKey)
				assert.Equal(t, "2.0.0", cfg.App.Version)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.True(t, cfg.App.RevealForeignNotes)
			},
		},
		{
			name: "cookie flags",
			args: []string{"-cookie-name", "sid", "-cookie-secure"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "sid", cfg.Server.CookieName)
				assert.True(t, cfg.Server.CookieSecure)
			},
		},
		{
			name: "config short flag",
			args: []string{"-c", "/tmp/a.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/a.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config long flag",
			args: []string{"-config", "/tmp/b.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/b.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid address", args: []string{"-a", "nonsense"}},
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad duration", args: []string{"-session-duration", "forever"}},
		{name: "bad int", args: []string{"-bcrypt-cost", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.ErrorIs(t, err, ErrInvalidFlags)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Repeatable(t *testing.T) {
	for i := 0; i < 2; i++ {
		cfg, err := parseFlags([]string{"-a", "localhost:8081"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	}
}

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments (without the program name) into a
// *StructuredConfig. A dedicated flag set is used so that parsing can be
// repeated and tested.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-redis-url redis URL for the session store
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-session-duration session lifetime (e.g., "24h", "30m")
//	-bcrypt-cost bcrypt work factor
//	-hash-key integrity hash key
//	-version application version
//	-log-level minimum log level
//	-reveal-foreign-notes answer 403 instead of 404 for other users' notes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cookie-name session cookie name
//	-cookie-secure mark the session cookie Secure
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var sessionDuration, requestTimeout time.Duration
	var bcryptCost int
	var hashKey, version, logLevel string
	var revealForeignNotes bool
	var cookieName string
	var cookieSecure bool

	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for the session store")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h, 30m)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&hashKey, "hash-key", "", "Integrity hash key")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.BoolVar(&revealForeignNotes, "reveal-foreign-notes", false, "Answer 403 for other users' notes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Mark the session cookie Secure")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			SessionDuration:    sessionDuration,
			BcryptCost:         bcryptCost,
			HashKey:            hashKey,
			Version:            version,
			LogLevel:           logLevel,
			RevealForeignNotes: revealForeignNotes,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Sessions: Sessions{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CookieName:     cookieName,
			CookieSecure:   cookieSecure,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds all interfaces. Otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

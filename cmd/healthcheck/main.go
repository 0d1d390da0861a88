// Command healthcheck probes a running go-note-keeper server and exits with
// status 0 when it is healthy and 1 otherwise. It reads the server address
// from the same configuration sources as the server itself, which makes it
// usable as a container HEALTHCHECK.
package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const probeTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("note-healthcheck")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	client, err := adapter.NewHTTPServerAdapter(adapter.Options{
		Address: cfg.Server.HTTPAddress,
		Timeout: probeTimeout,
		HashKey: cfg.App.HashKey,
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating client")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err = client.Health(ctx); err != nil {
		log.Error().Err(err).Str("address", cfg.Server.HTTPAddress).Msg("server is unhealthy")
		return 1
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("server is healthy")
	return 0
}

package http

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	requestTimeout time.Duration

	// hasher signs responses and verifies HashSHA256 request headers. It is
	// nil when no hash key is configured.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, appCfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cookie: cookieSettings{
			name:   serverCfg.CookieName,
			secure: serverCfg.CookieSecure,
			maxAge: appCfg.SessionDuration,
		},
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
	if h.cookie.name == "" {
		h.cookie.name = defaultCookieName
	}
	if appCfg.HashKey != "" {
		h.hasher = utils.NewHasher(appCfg.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}

package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the services on top of storages. Auth and note services
// are wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, storages.SessionStorage, cfg, logger))
	noteService := NewNoteValidationService().
		Wrap(NewNoteService(storages.NoteRepository, cfg, logger))

	return &Services{
		AuthService:    authService,
		NoteService:    noteService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages),
	}, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages aggregates every persistence dependency of the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	SessionStorage SessionStorage

	db *DB
}

// NewStorages connects the relational database selected by cfg.DB.DSN,
// applies migrations and sets up the session store: Redis when
// cfg.Sessions.RedisURL is set, process memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	var sessions SessionStorage
	if cfg.Sessions.RedisURL != "" {
		sessions, err = NewRedisSessionStorage(ctx, cfg.Sessions.RedisURL, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error connecting session storage: %w", err)
		}
	} else {
		sessions = NewMemorySessionStorage(log)
	}

	return NewStoragesFromDB(db, sessions, log), nil
}

// NewStoragesFromDB builds the repositories on top of an already migrated
// database.
func NewStoragesFromDB(db *DB, sessions SessionStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		SessionStorage: sessions,
		db:             db,
	}
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNilDB
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the session store and the database connection.
func (s *Storages) Close() error {
	var errs []error
	if s.SessionStorage != nil {
		errs = append(errs, s.SessionStorage.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}

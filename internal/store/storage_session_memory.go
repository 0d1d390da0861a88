package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const memorySessionCleanupInterval = 10 * time.Minute

// memorySessionStorage keeps sessions in process memory. Every entry expires
// at its session's ExpiresAt; expired entries are purged periodically.
type memorySessionStorage struct {
	cache  *cache.Cache
	logger *logger.Logger
}

// NewMemorySessionStorage constructs an in-process [SessionStorage].
func NewMemorySessionStorage(logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating in-memory session storage")
	return &memorySessionStorage{
		cache:  cache.New(cache.NoExpiration, memorySessionCleanupInterval),
		logger: logger,
	}
}

func (m *memorySessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		// already expired, nothing to keep
		return nil
	}

	m.cache.Set(session.ID, session, ttl)
	return nil
}

func (m *memorySessionStorage) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	item, found := m.cache.Get(sessionID)
	if !found {
		return models.Session{}, ErrSessionNotFound
	}

	session, ok := item.(models.Session)
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (m *memorySessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	m.cache.Delete(sessionID)
	return nil
}

func (m *memorySessionStorage) Close() error {
	m.cache.Flush()
	return nil
}

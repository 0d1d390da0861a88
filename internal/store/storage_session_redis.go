package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	sessionKeyPrefix = "session:"
	redisPingTimeout = 2 * time.Second
)

// redisSessionStorage keeps sessions in Redis as JSON values whose key TTL
// matches the session lifetime, so that several server instances can share
// them.
type redisSessionStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionStorage connects to the Redis server at redisURL
// (e.g. "redis://:password@localhost:6379/0") and pings it.
func NewRedisSessionStorage(ctx context.Context, redisURL string, log *logger.Logger) (SessionStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisSessionStorage").Msg("invalid redis URL")
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSessionStorage").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "NewRedisSessionStorage").Msg("connected to redis successfully")

	return newRedisSessionStorage(client, log), nil
}

func newRedisSessionStorage(client *redis.Client, log *logger.Logger) *redisSessionStorage {
	return &redisSessionStorage{
		client: client,
		logger: log,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func encodeSession(session models.Session) ([]byte, error) {
	return json.Marshal(session)
}

func decodeSession(data []byte) (models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *redisSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := encodeSession(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = r.client.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "redisSessionStorage.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

func (r *redisSessionStorage) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "redisSessionStorage.GetSession").
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	session, err := decodeSession(data)
	if err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}
	if !session.ExpiresAt.After(time.Now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *redisSessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "redisSessionStorage.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (r *redisSessionStorage) Close() error {
	return r.client.Close()
}

package service

import "context"

type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	storage pinger
}

// NewHealthService reports the health of storage.
func NewHealthService(storage pinger) HealthService {
	return &healthService{storage: storage}
}

func (h *healthService) CheckHealth(ctx context.Context) error {
	return h.storage.Ping(ctx)
}

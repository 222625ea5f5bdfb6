package store

import (
	"context"
	"time"

	"github.com/medichat/go-medichat/internal/logger"
)

// Storages aggregates every persistence backend the service layer needs.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	SessionStore       SessionStore
}

// NewStorages wires the repositories onto the shared database handle and
// selects the session store backend: Redis when redisURL is non-empty, a
// process-local map otherwise.
func NewStorages(ctx context.Context, db *DB, redisURL string, sessionTTL time.Duration, log *logger.Logger) (*Storages, error) {
	sessions, err := newSessionStore(ctx, redisURL, sessionTTL, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		SessionStore:       sessions,
	}, nil
}

func newSessionStore(ctx context.Context, redisURL string, ttl time.Duration, log *logger.Logger) (SessionStore, error) {
	if redisURL != "" {
		return NewRedisSessionStore(ctx, redisURL, ttl, log)
	}

	return NewMemorySessionStore(ttl, log), nil
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/models"
)

// memorySessionStore keeps assessment sessions in a process-local map.
// It is the default store for single-instance deployments; multi-instance
// deployments should configure REDIS_URL instead so sessions survive
// restarts and are visible to every replica.
type memorySessionStore struct {
	logger *logger.Logger
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]models.AssessmentSession
}

// NewMemorySessionStore constructs an in-memory [SessionStore] whose
// sessions expire after ttl of inactivity. Expired sessions are dropped
// lazily on access and in bulk by [memorySessionStore.PurgeExpired].
func NewMemorySessionStore(ttl time.Duration, logger *logger.Logger) SessionStore {
	logger.Debug().Dur("ttl", ttl).Msg("creating in-memory session store")
	return &memorySessionStore{
		logger:   logger,
		ttl:      ttl,
		sessions: make(map[string]models.AssessmentSession),
	}
}

func (s *memorySessionStore) Save(ctx context.Context, session models.AssessmentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (models.AssessmentSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || s.expired(session) {
		return models.AssessmentSession{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, sessionID)
	return nil
}

func (s *memorySessionStore) List(ctx context.Context) ([]models.AssessmentSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.AssessmentSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		if s.expired(session) {
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// PurgeExpired drops every session idle longer than the TTL and returns how
// many were removed. Called periodically by the cleanup worker.
func (s *memorySessionStore) PurgeExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			purged++
		}
	}

	return purged, nil
}

func (s *memorySessionStore) expired(session models.AssessmentSession) bool {
	return s.ttl > 0 && time.Since(session.UpdatedAt) > s.ttl
}

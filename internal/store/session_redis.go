package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/models"
)

// sessionKeyPrefix namespaces assessment sessions inside a Redis database
// shared with other applications.
const sessionKeyPrefix = "medichat:assessment:"

// redisSessionStore keeps assessment sessions in Redis, serialized as JSON.
// Expiry is delegated to Redis key TTLs, refreshed on every Save.
type redisSessionStore struct {
	logger *logger.Logger
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore connects to the Redis instance described by redisURL
// (e.g. "redis://localhost:6379/0"), verifies connectivity with a ping, and
// returns a [SessionStore] whose sessions expire after ttl of inactivity.
func NewRedisSessionStore(ctx context.Context, redisURL string, ttl time.Duration, logger *logger.Logger) (SessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting redis (ping): %w", err)
	}
	logger.Info().Str("addr", opts.Addr).Msg("connected to redis session store")

	return &redisSessionStore{
		logger: logger,
		client: client,
		ttl:    ttl,
	}, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session models.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("error saving session to redis: %w", err)
	}

	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (models.AssessmentSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.AssessmentSession{}, ErrSessionNotFound
		}
		return models.AssessmentSession{}, fmt.Errorf("error reading session from redis: %w", err)
	}

	var session models.AssessmentSession
	if err := json.Unmarshal(data, &session); err != nil {
		return models.AssessmentSession{}, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("error deleting session from redis: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (s *redisSessionStore) List(ctx context.Context) ([]models.AssessmentSession, error) {
	var sessions []models.AssessmentSession

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // expired between SCAN and GET
			}
			return nil, fmt.Errorf("error reading session from redis: %w", err)
		}

		var session models.AssessmentSession
		if err := json.Unmarshal(data, &session); err != nil {
			s.logger.Err(err).Str("key", iter.Val()).Msg("skipping undecodable session")
			continue
		}
		sessions = append(sessions, session)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning sessions in redis: %w", err)
	}

	return sessions, nil
}

// PurgeExpired is a no-op for Redis: key TTLs already evict idle sessions.
func (s *redisSessionStore) PurgeExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued access tokens so they can be revoked before they expire.
type SessionStore interface {
	Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

// =============================================================================
// Redis
// =============================================================================

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}

// =============================================================================
// In-memory
// =============================================================================

// memorySessionStore is used when redis is disabled. Sessions do not survive a restart.
type memorySessionStore struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]time.Time
}

func NewMemorySessionStore() SessionStore {
	return newMemorySessionStore(time.Now)
}

func newMemorySessionStore(now func() time.Time) *memorySessionStore {
	return &memorySessionStore{
		now:      now,
		sessions: make(map[string]time.Time),
	}
}

func (s *memorySessionStore) Register(_ context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// expired entries are dropped on write
	for key, expiresAt := range s.sessions {
		if !now.Before(expiresAt) {
			delete(s.sessions, key)
		}
	}
	s.sessions[accessTokenKey(userID, tokenID)] = now.Add(ttl)
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.sessions[accessTokenKey(userID, tokenID)]
	return ok && s.now().Before(expiresAt), nil
}

func (s *memorySessionStore) Revoke(_ context.Context, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, accessTokenKey(userID, tokenID))
	return nil
}

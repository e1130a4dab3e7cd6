package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days.
	SessionDuration = 7 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions.
	SessionKeyPrefix = "session:"
)

// SessionStore holds the server-side record of authenticated clients, keyed by
// the token carried in the session cookie. Sessions store only the user's
// durable ID; handlers re-fetch the user record per request so the session
// never serves a stale copy.
type SessionStore interface {
	// Create starts a session for userID and returns the session token.
	Create(ctx context.Context, userID string) (string, error)
	// Validate returns the user ID bound to token, with ok=false when the
	// session is absent or expired.
	Validate(ctx context.Context, token string) (userID string, ok bool, err error)
	// Destroy removes the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

func newSessionToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// RedisSessionStore stores sessions in Redis with a 7-day expiration.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, SessionKeyPrefix+token, userID, SessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Validate(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	userID, err := s.client.Get(ctx, SessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

func (s *RedisSessionStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, SessionKeyPrefix+token).Err()
}

// MemorySessionStore keeps sessions in a process-local map. Suitable for
// single-process deployments without Redis, and for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = SessionDuration
	}
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemorySessionStore) Create(_ context.Context, userID string) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemorySessionStore) Validate(_ context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return "", false, nil
	}
	return sess.userID, true, nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "admin:sess:" // admin:sess:{session_id} -> bearer token
	formKeyPrefix    = "admin:form:" // admin:form:{session_id}:{form_token} -> "1"
	formTokenTTL     = 1 * time.Hour
)

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Store keeps the backend bearer token server-side, keyed by an opaque
// session id that lives in the browser cookie. Expiry rides on redis TTLs;
// there is no sweeping to do.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given session lifetime.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create persists the bearer token under a fresh session id.
func (s *Store) Create(ctx context.Context, bearerToken string) (string, error) {
	id := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+id, bearerToken, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Token resolves a session id to its bearer token.
func (s *Store) Token(ctx context.Context, id string) (string, error) {
	token, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return token, nil
}

// Delete removes the session unconditionally. Deleting an unknown id is not
// an error; logout must always succeed.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IssueFormToken mints a one-time token bound to the session. Every rendered
// write form carries one; consuming it on submit is the server-side
// equivalent of disabling the submit button while a request is in flight.
func (s *Store) IssueFormToken(ctx context.Context, sessionID string) (string, error) {
	tok := uuid.New().String()
	key := formKeyPrefix + sessionID + ":" + tok
	if err := s.client.Set(ctx, key, "1", formTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to issue form token: %w", err)
	}
	return tok, nil
}

// ConsumeFormToken atomically spends the token. The second submit of the
// same form sees ok=false and is rejected before any backend call.
func (s *Store) ConsumeFormToken(ctx context.Context, sessionID, tok string) (bool, error) {
	key := formKeyPrefix + sessionID + ":" + tok
	_, err := s.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume form token: %w", err)
	}
	return true, nil
}

// Ping reports whether the underlying redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore tracks which session ids are live. A token whose session
// record is gone (logged out, or force-revoked) no longer authenticates,
// even though its signature is still valid.
type SessionStore interface {
	Put(ctx context.Context, userID uuid.UUID, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, sessionID string) error
	// DeleteAll revokes every session of a user (password change, admin
	// deactivation).
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(userID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, userID.String(), sessionID)
}

func (s *redisSessionStore) Put(ctx context.Context, userID uuid.UUID, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID, sessionID), "valid", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID uuid.UUID, sessionID string) error {
	return s.client.Del(ctx, sessionKey(userID, sessionID)).Err()
}

func (s *redisSessionStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("%s%s:*", sessionKeyPrefix, userID.String())
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

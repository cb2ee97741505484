package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"stayhub/models"
)

const sessionPrefix = "bot:session:"

// RedisStore keeps sessions in Redis with a TTL, so in-flight conversations
// survive bot restarts and abandoned ones expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, userID)
}

// Get loads the session for a user, or a fresh one when none is stored.
func (s *RedisStore) Get(ctx context.Context, userID int64) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return &models.Session{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save stores the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.UserID), b, s.ttl).Err()
}

// Clear removes the stored session.
func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}

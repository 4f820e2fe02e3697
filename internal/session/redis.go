package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a Redis hash so all instances behind a
// load balancer see the same abuse state. The hash TTL is refreshed on every
// write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	val, err := s.client.HGet(ctx, s.hashKey(sessionID), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis hget: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	hash := s.hashKey(sessionID)
	if err := s.client.HSet(ctx, hash, key, value).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	if err := s.client.Expire(ctx, hash, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis expire: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) hashKey(sessionID string) string {
	return "session:" + sessionID
}

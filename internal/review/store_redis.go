package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces review entries within the shared Redis keyspace.
const keyPrefix = "review:"

// RedisStore implements Store on a Redis client. Each review lives under
// its own key, giving the per-key atomicity the ledger relies on.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed Store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(id string) string {
	return keyPrefix + id
}

// Get returns the entry stored under id, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// Set stores an entry under id with no expiration.
func (s *RedisStore) Set(ctx context.Context, id string, data []byte) error {
	if err := s.client.Set(ctx, redisKey(id), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the entry under id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// List scans the review keyspace and fetches all entries. Keys deleted
// between the scan and the fetch are silently skipped: listing is a
// best-effort snapshot, not a consistent point-in-time view.
func (s *RedisStore) List(ctx context.Context) (map[string][]byte, error) {
	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}

	entries := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return entries, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		id := strings.TrimPrefix(keys[i], keyPrefix)
		entries[id] = []byte(str)
	}

	return entries, nil
}

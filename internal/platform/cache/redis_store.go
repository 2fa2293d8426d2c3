// Package cache provides a Redis-backed TTL store for market data.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a JSON-over-Redis key/value store with per-entry expiry.
// Entries are valid until their TTL elapses; Redis handles eviction, so the
// store is bounded by the Redis instance rather than process memory.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisStore creates a RedisStore. If namespace is empty, "stocks" is used.
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "stocks"
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

// Get reads the entry under key into dest. It returns false when the key is
// absent or expired. A corrupted entry is deleted and treated as a miss.
func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := s.rdb.Get(ctx, s.fullKey(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		// Delete corrupted cache entry
		_ = s.rdb.Del(ctx, s.fullKey(key)).Err()
		return false, nil
	}
	return true, nil
}

// Set stores value under key with the given TTL. A TTL of zero or less
// defaults to 5 minutes.
func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.fullKey(key), b, ttl).Err()
}

// fullKey prefixes the namespace and escapes characters that are problematic
// for Redis keys.
func (s *RedisStore) fullKey(key string) string {
	return s.namespace + ":" + safe(key)
}

func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

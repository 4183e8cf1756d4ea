package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// MetricsRecorder interface for recording cache lookup metrics
type MetricsRecorder interface {
	RecordCacheLookup(ctx context.Context, entity string, hit bool)
}

// Store is a Redis-backed query cache. Entries are JSON blobs keyed by
// (entity, filter-set) with a freshness window set per query. A nil Store is
// valid and behaves as a permanent miss, so callers never depend on Redis
// being up.
type Store struct {
	client  *redis.Client
	metrics MetricsRecorder
}

// Connect creates a Store against the Redis instance configured via
// REDIS_ADDR and REDIS_PASSWORD.
func Connect() (*Store, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("✓ Connected to Redis query cache at %s", addr)
	return &Store{client: client}, nil
}

// SetMetrics attaches a metrics recorder for cache hit/miss counters.
func (s *Store) SetMetrics(m MetricsRecorder) {
	if s != nil {
		s.metrics = m
	}
}

// GetJSON loads the cached value for key into dest. It returns false when the
// key is absent, expired, or Redis is unavailable.
func (s *Store) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.client == nil {
		return false
	}

	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		s.recordLookup(ctx, key, false)
		return false
	}
	if err != nil {
		log.Printf("[CACHE] get %s failed: %v", key, err)
		s.recordLookup(ctx, key, false)
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		log.Printf("[CACHE] corrupt entry for %s, dropping: %v", key, err)
		s.client.Del(ctx, key)
		s.recordLookup(ctx, key, false)
		return false
	}

	s.recordLookup(ctx, key, true)
	return true
}

// SetJSON stores value under key for the given freshness window. A zero ttl
// means the query is never cached.
func (s *Store) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s == nil || s.client == nil || ttl <= 0 {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("[CACHE] marshal for %s failed: %v", key, err)
		return
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("[CACHE] set %s failed: %v", key, err)
	}
}

// Invalidate removes the named keys. Mutations pass their explicit
// invalidation list here; there is no pattern matching.
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] invalidate %v failed: %v", keys, err)
	}
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) recordLookup(ctx context.Context, key string, hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(ctx, entityOf(key), hit)
	}
}

// Package cache holds the single-slot menu cache and its backing stores.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	redisstore "github.com/gofiber/storage/redis/v3"
)

// ErrStoreUnavailable is returned when a backing store cannot be reached.
var ErrStoreUnavailable = errors.New("cache store unavailable")

// Store is a byte-oriented key/value store with per-entry expiry.
// Get returns nil, nil for a missing or expired key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

type memoryEntry struct {
	value    []byte
	expireAt time.Time // zero => no TTL
}

// MemoryStore is an in-process Store. Expiry is evaluated against its clock.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   clock.Clock
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty store. A nil clock uses the wall clock.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.New()
	}
	return &MemoryStore{clock: clk, entries: make(map[string]memoryEntry)}
}

// Get returns a copy of the value stored under key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if !e.expireAt.IsZero() && !s.clock.Now().Before(e.expireAt) {
		return nil, nil
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores val under key. A non-positive ttl never expires.
func (s *MemoryStore) Set(key string, val []byte, ttl time.Duration) error {
	e := memoryEntry{value: append([]byte(nil), val...)}
	if ttl > 0 {
		e.expireAt = s.clock.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close drops all entries.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}

// RedisStore is a Store backed by Redis, shared between replicas.
type RedisStore struct {
	storage *redisstore.Storage
}

// NewRedisStore connects to the Redis instance at url.
func NewRedisStore(url string) (store *RedisStore, err error) {
	// The storage constructor panics when the initial ping fails.
	defer func() {
		if r := recover(); r != nil {
			store = nil
			err = fmt.Errorf("%w: %v", ErrStoreUnavailable, r)
		}
	}()

	storage := redisstore.New(redisstore.Config{
		URL: url,
	})
	return &RedisStore{storage: storage}, nil
}

// Get returns the value stored under key.
func (s *RedisStore) Get(key string) ([]byte, error) {
	return s.storage.Get(key)
}

// Set stores val under key with ttl.
func (s *RedisStore) Set(key string, val []byte, ttl time.Duration) error {
	return s.storage.Set(key, val, ttl)
}

// Ping checks if the Redis connection is healthy.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.storage.Conn().Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.storage.Close()
}

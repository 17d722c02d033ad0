// Package redisstore provides a Redis-backed slot storage implementation.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces slot keys inside a shared Redis database.
const DefaultKeyPrefix = "bookshelf:"

const opTimeout = 3 * time.Second

// RedisStorage stores each slot as a plain Redis string.
type RedisStorage struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStorage connects to the Redis server at url and verifies it answers.
func NewRedisStorage(url, prefix string) (*RedisStorage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("redis storage: url cannot be empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis storage: parse url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis storage: ping: %w", err)
	}
	return NewFromClient(client, prefix), nil
}

// NewFromClient wraps an existing client without checking connectivity.
func NewFromClient(client redis.UniversalClient, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) key(k string) string {
	return s.prefix + k
}

// Get returns the value stored under key.
func (s *RedisStorage) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis storage: get slot %q: %w", key, err)
	}
	return value, true, nil
}

// Set replaces the value stored under key. Slots never expire.
func (s *RedisStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis storage: set slot %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStorage) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

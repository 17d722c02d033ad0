package redisstore

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewRedisStorageRejectsBadURL(t *testing.T) {
	_, err := NewRedisStorage("", DefaultKeyPrefix)
	require.Error(t, err)

	_, err = NewRedisStorage("http://not-redis", DefaultKeyPrefix)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse url")
}

func TestNewRedisStorageFailsWhenServerIsDown(t *testing.T) {
	_, err := NewRedisStorage("redis://127.0.0.1:1/0", DefaultKeyPrefix)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ping")
}

func TestOperationsWrapClientErrors(t *testing.T) {
	s := NewFromClient(unreachableClient(), DefaultKeyPrefix)
	defer s.Close()

	_, found, err := s.Get("wishlist")
	require.Error(t, err)
	require.False(t, found)
	require.Contains(t, err.Error(), `get slot "wishlist"`)

	err = s.Set("wishlist", "[]")
	require.Error(t, err)
	require.Contains(t, err.Error(), `set slot "wishlist"`)
}

func TestKeyPrefix(t *testing.T) {
	s := NewFromClient(unreachableClient(), "app:")
	defer s.Close()
	require.Equal(t, "app:wishlist", s.key("wishlist"))
}

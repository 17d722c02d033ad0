package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/storage/redisstore"
	"github.com/cristianoliveira/bookshelf/internal/storage/sqlite"
)

const (
	// BackendMemory keeps slots in process memory only.
	BackendMemory = "memory"
	// BackendFile keeps slots in a JSON document under the state directory.
	BackendFile = "file"
	// BackendSQLite keeps slots in a SQLite database under the state directory.
	BackendSQLite = "sqlite"
	// BackendRedis keeps slots in a Redis server.
	BackendRedis = "redis"

	slotsDBFileName = "slots.db"
)

var (
	_ Store = (*sqlite.SQLiteStorage)(nil)
	_ Store = (*redisstore.RedisStorage)(nil)
)

// NewFromConfig creates the store selected by wishlist_backend.
// Config must already be loaded.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("wishlist_backend", BackendFile))
}

// NewForBackend creates a store for the provided backend name.
// A backend that cannot start falls back to the file store, and a file store
// that cannot start falls back to memory so browsing keeps working.
func NewForBackend(backend string) (Store, error) {
	stateDir := GetStateDir()

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemoryStorage(), nil
	case "", BackendFile:
		return fileOrMemory(stateDir), nil
	case BackendSQLite:
		s, err := sqlite.NewSQLiteStorage(filepath.Join(stateDir, slotsDBFileName))
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return fileOrMemory(stateDir), nil
		}
		return s, nil
	case BackendRedis:
		s, err := redisstore.NewRedisStorage(config.Get("redis_url", ""), redisstore.DefaultKeyPrefix)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize redis backend, falling back to file: %v", err))
			return fileOrMemory(stateDir), nil
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown wishlist backend %q", backend)
	}
}

func fileOrMemory(stateDir string) Store {
	fs, err := NewFileStorage(stateDir)
	if err != nil {
		colors.Warning(fmt.Sprintf("failed to initialize file backend, wishlist will not persist: %v", err))
		return NewMemoryStorage()
	}
	return fs
}

// GetStateDir returns the configured state directory.
func GetStateDir() string {
	return config.Get("state_dir", "")
}

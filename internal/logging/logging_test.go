package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("BOOKSHELF_CONFIG_PATH", "")
	config.Load()
	return tmp
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)

	t.Setenv("BOOKSHELF_LOGGING_ENABLED", "true")
	t.Setenv("BOOKSHELF_LOGGING_LEVEL", "warn")
	t.Setenv("BOOKSHELF_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
	require.NotEmpty(t, cfg.Session)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("BOOKSHELF_DEBUG", "true")
	t.Setenv("BOOKSHELF_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("BOOKSHELF_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("BOOKSHELF_QUIET", "")
	t.Setenv("BOOKSHELF_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	dir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "bookshelf", "logs"), dir)
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	setupTest(t)

	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, l)
	l.Info("ignored", "k", "v")
	require.NoError(t, l.Shutdown())
}

func TestFileLoggerWritesRedactedJSON(t *testing.T) {
	setupTest(t)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "test"
	l, err := Init(cfg)
	require.NoError(t, err)

	l.With("component", "catalog").Info("fetched", "count", 3, "api_token", "abc123")
	path := l.(*loggerImpl).filePath()
	require.NoError(t, l.Shutdown())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "fetched", entry["msg"])
	require.Equal(t, "catalog", entry["component"])
	require.Equal(t, "[REDACTED]", entry["api_token"])
	require.Equal(t, cfg.Session, entry["session"])
}

func TestRedact(t *testing.T) {
	got := redact([]any{"password", "p", "monkey", "m", "redis_dsn", "x", "count"})
	require.Equal(t, []any{"password", "[REDACTED]", "monkey", "m", "redis_dsn", "[REDACTED]", "count"}, got)
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"bookshelf_a.log", "bookshelf_b.log", "bookshelf_c.log", "other.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"bookshelf_c.log", "other.log"}, names)
}

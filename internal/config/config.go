// Package config loads bookshelf settings from defaults, a TOML file and
// BOOKSHELF_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BOOKSHELF_"
)

// Default values shared with the packages that read them.
const (
	DefaultAPIURL      = "https://gutendex.com/books/"
	DefaultWishlistKey = "wishlist"
	DefaultPageSize    = 10
)

const sampleHeader = "# bookshelf configuration\n# This file is in TOML format.\n# Keys may be written flat (page_size = 20) or inside their section.\n\n"

var (
	values   map[string]string
	defaults map[string]string
	mu       sync.RWMutex
)

// Load initializes configuration. Precedence, lowest first: defaults,
// config file, environment.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	values = make(map[string]string)
	defaults = make(map[string]string)

	for _, s := range settings() {
		values[s.key] = s.value
		defaults[s.key] = s.value
	}
	// Env first so BOOKSHELF_CONFIG_DIR can move the file.
	applyEnv()
	applyFile(configPath())
	applyEnv()
	normalize()
	writeSample()
}

// reset clears loaded configuration. Used by tests.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	values = nil
	defaults = nil
}

// configPath returns the file to read, or "" when there is none.
func configPath() string {
	if path := os.Getenv(EnvPrefix + "CONFIG_PATH"); path != "" {
		return path
	}
	path := filepath.Join(values["config_dir"], "config"+FileExtTOML)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// applyFile merges a TOML file into values. Top-level tables are section
// names; their keys map back to flat keys.
func applyFile(path string) {
	if path == "" || strings.ToLower(filepath.Ext(path)) != FileExtTOML {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}

	for name, raw := range doc {
		name = strings.ToLower(name)
		table, isTable := raw.(map[string]any)
		if !isTable {
			setFromFile(name, raw)
			continue
		}
		for field, v := range table {
			setFromFile(flatKey(name, strings.ToLower(field)), v)
		}
	}
}

func setFromFile(key string, raw any) {
	converted, ok := toString(raw)
	if !ok {
		colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, raw))
		return
	}
	values[key] = converted
}

// toString converts a decoded TOML scalar to its string form.
func toString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// applyEnv copies BOOKSHELF_* variables into values.
func applyEnv() {
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == "config_path" {
			continue
		}
		values[key] = value
	}
}

// normalize runs each setting's validator. Invalid values fall back to the default.
func normalize() {
	for _, s := range settings() {
		if s.validate == nil {
			continue
		}
		normalized, err := s.validate(s.key, values[s.key], s.value)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", s.key, err, s.value))
			normalized = s.value
		}
		values[s.key] = normalized
	}
}

// writeSample writes the defaults, grouped by section, when no config file exists.
func writeSample() {
	dir := values["config_dir"]
	if dir == "" {
		return
	}
	path := filepath.Join(dir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", dir, err))
		return
	}

	doc := make(map[string]any)
	for _, s := range settings() {
		if s.local {
			continue
		}
		typed := typedValue(defaults[s.key])
		if s.section == "" {
			doc[s.name] = typed
			continue
		}
		table, ok := doc[s.section].(map[string]any)
		if !ok {
			table = make(map[string]any)
			doc[s.section] = table
		}
		table[s.name] = typed
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	if err := os.WriteFile(path, append([]byte(sampleHeader), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

// typedValue turns a default back into a TOML int, float or bool when it parses as one.
func typedValue(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

func lookup(key string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := values[key]
	return val, ok
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	if val, ok := lookup(key); ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	val, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetFloat returns a configuration value as float64, or default.
func GetFloat(key string, defaultValue float64) float64 {
	val, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	val, ok := lookup(key)
	if !ok {
		return defaultValue
	}
	switch normalizeBool(val) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Set overrides a configuration value for the lifetime of the process.
// Command-line flags use it to take precedence over file and env values.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if values == nil {
		values = make(map[string]string)
	}
	values[key] = value
}

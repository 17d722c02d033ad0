package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// setting describes one configuration key: where it lives in the config
// file, its default and how it is validated.
type setting struct {
	key      string
	section  string
	name     string
	value    string
	validate Validator
	// local settings are machine specific and left out of the sample file.
	local bool
}

// settings returns every known key in sample-file order.
func settings() []setting {
	home, _ := os.UserHomeDir()
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	positiveInt := PositiveIntValidator()
	boolean := BoolValidator()

	return []setting{
		{key: "config_dir", name: "config_dir", value: filepath.Join(configHome, "bookshelf"), local: true},
		{key: "state_dir", name: "state_dir", value: filepath.Join(stateHome, "bookshelf"), local: true},

		{key: "api_url", section: "catalog", name: "api_url", value: DefaultAPIURL},
		{key: "max_pages", section: "catalog", name: "max_pages", value: "1", validate: positiveInt},
		{key: "request_timeout", section: "catalog", name: "request_timeout", value: "10", validate: positiveInt},
		{key: "requests_per_second", section: "catalog", name: "requests_per_second", value: "2", validate: PositiveFloatValidator()},

		{key: "page_size", section: "browser", name: "page_size", value: strconv.Itoa(DefaultPageSize), validate: positiveInt},

		{key: "wishlist_backend", section: "wishlist", name: "backend", value: "file",
			validate: EnumValidator("memory", "file", "sqlite", "redis")},
		{key: "wishlist_key", section: "wishlist", name: "key", value: DefaultWishlistKey},
		{key: "redis_url", section: "wishlist", name: "redis_url", value: "redis://localhost:6379/0"},

		{key: "metrics_addr", section: "metrics", name: "addr", value: ""},

		{key: "logging_enabled", section: "logging", name: "enabled", value: "false", validate: boolean},
		{key: "logging_level", section: "logging", name: "level", value: "info",
			validate: EnumValidator("debug", "info", "warn", "error")},
		{key: "logging_max_files", section: "logging", name: "max_files", value: "10", validate: positiveInt},

		{key: "debug", name: "debug", value: "false", validate: boolean},
		{key: "quiet", name: "quiet", value: "false", validate: boolean},
	}
}

// flatKey maps a section field from the config file to its flat key.
// Unknown fields become section_field.
func flatKey(section, field string) string {
	for _, s := range settings() {
		if s.section == section && s.name == field {
			return s.key
		}
	}
	return section + "_" + field
}

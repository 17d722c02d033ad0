package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

// fallback warns about an invalid value and returns the default instead.
func fallback(key, value, defaultValue, want string) (string, error) {
	colors.Warning(fmt.Sprintf("invalid %s value '%s': must be %s, using default: %s", key, value, want, defaultValue))
	return defaultValue, nil
}

// PositiveIntValidator accepts integers greater than zero.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			return strconv.Itoa(n), nil
		}
		return fallback(key, value, defaultValue, "a positive integer")
	}
}

// PositiveFloatValidator accepts numbers greater than zero.
func PositiveFloatValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && f > 0 {
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}
		return fallback(key, value, defaultValue, "a positive number")
	}
}

// EnumValidator accepts one of allowed, case-insensitively, and lowercases it.
func EnumValidator(allowed ...string) Validator {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[strings.ToLower(a)] = true
	}
	names := append([]string(nil), allowed...)
	sort.Strings(names)
	want := "one of: " + strings.Join(names, ", ")

	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		lower := strings.ToLower(strings.TrimSpace(value))
		if set[lower] {
			return lower, nil
		}
		return fallback(key, value, defaultValue, want)
	}
}

// BoolValidator normalizes 1/yes/on and 0/no/off to "true" and "false".
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if normalized := normalizeBool(value); normalized == "true" || normalized == "false" {
			return normalized, nil
		}
		return fallback(key, value, defaultValue, "one of: 1, true, yes, on, 0, false, no, off")
	}
}

// normalizeBool converts boolean spellings to "true"/"false". Anything else
// comes back unchanged.
func normalizeBool(val string) string {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

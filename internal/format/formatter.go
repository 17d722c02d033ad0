// Package format provides output formatting for non-interactive commands.
// It includes formatters for a page of books and for the genre vocabulary.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatListing writes one page of search results.
	FormatListing(listing Listing, writer io.Writer) error

	// FormatGenres writes the genre vocabulary.
	FormatGenres(genres []string, writer io.Writer) error
}

// Listing is one page of results plus the criteria that produced it.
type Listing struct {
	Query string
	Genre string
	Page  domain.Page
	Cards []render.Card
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one line per book followed by the page status.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints books under column headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints a single JSON document.
	FormatterTypeJSON FormatterType = "json"
)

var formatterTypes = []FormatterType{FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON}

// ParseType validates a user-supplied format name. Matching is case-insensitive.
func ParseType(name string) (FormatterType, error) {
	t := FormatterType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range formatterTypes {
		if t == known {
			return t, nil
		}
	}
	names := make([]string, len(formatterTypes))
	for i, known := range formatterTypes {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown format %q (want one of: %s)", name, strings.Join(names, ", "))
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}

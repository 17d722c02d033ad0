package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criteria holds the search text and the genre facet.
// An empty Genre means no genre filtering.
type Criteria struct {
	Query string
	Genre string
}

// IsEmpty returns true if the criteria match every book.
func (c Criteria) IsEmpty() bool {
	return c.Query == "" && c.Genre == ""
}

// NormalizeQuery lowercases text for case-insensitive matching.
func NormalizeQuery(text string) string {
	return cases.Lower(language.Und).String(text)
}

// matches is Matches with a query already passed through NormalizeQuery.
func (c Criteria) matches(b Book, query string) bool {
	if query != "" && !strings.Contains(NormalizeQuery(b.Title), query) {
		return false
	}
	if c.Genre != "" && !b.HasSubject(c.Genre) {
		return false
	}
	return true
}

// Matches reports whether a book satisfies the criteria.
func (c Criteria) Matches(b Book) bool {
	return c.matches(b, NormalizeQuery(c.Query))
}

// FilterBooks returns the books matching the criteria, in their original order.
// It never returns nil.
func FilterBooks(books []Book, criteria Criteria) []Book {
	if criteria.IsEmpty() {
		result := make([]Book, len(books))
		copy(result, books)
		return result
	}

	query := NormalizeQuery(criteria.Query)
	result := make([]Book, 0, len(books))
	for _, b := range books {
		if criteria.matches(b, query) {
			result = append(result, b)
		}
	}
	return result
}

// Genres returns the distinct subjects across books in first-seen order.
func Genres(books []Book) []string {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, b := range books {
		for _, s := range b.Subjects {
			if seen[s] {
				continue
			}
			seen[s] = true
			genres = append(genres, s)
		}
	}
	return genres
}

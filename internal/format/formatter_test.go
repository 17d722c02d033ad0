package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleListing() Listing {
	books := []domain.Book{
		{ID: "84", Title: "Frankenstein; Or, The Modern Prometheus (1818 text)", Authors: []domain.Person{{Name: "Shelley, Mary"}}, Subjects: []string{"Horror"}},
		{ID: "345", Title: "Dracula"},
	}
	page := domain.Paginate(books, 2, 1)
	return Listing{
		Query: "a",
		Page:  page,
		Cards: render.Cards(page.Items, func(id string) bool { return id == "345" }),
	}
}

func TestFormatterFactory(t *testing.T) {
	tests := []struct {
		name     string
		ftype    FormatterType
		expected interface{}
	}{
		{"Simple", FormatterTypeSimple, &SimpleFormatter{}},
		{"Table", FormatterTypeTable, &TableFormatter{}},
		{"JSON", FormatterTypeJSON, &JSONFormatter{}},
		{"Unknown", FormatterType("unknown"), &SimpleFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.expected, NewFormatter(tt.ftype))
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Json ")
	require.NoError(t, err)
	assert.Equal(t, FormatterTypeJSON, got)

	_, err = ParseType("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simple, table, json")
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatListing(sampleListing(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "84")
	assert.Contains(t, lines[0], "by Shelley, Mary [Horror]")
	assert.True(t, strings.HasPrefix(lines[1], "* 345"))
	assert.Contains(t, lines[1], "by "+domain.UnknownAuthor+" ["+domain.UnknownGenre+"]")
	assert.Equal(t, "Page 1 of 1", lines[2])
}

func TestEmptyListing(t *testing.T) {
	for _, f := range []Formatter{NewSimpleFormatter(), NewTableFormatter()} {
		var buf bytes.Buffer
		require.NoError(t, f.FormatListing(Listing{Page: domain.Paginate(nil, 10, 1)}, &buf))
		assert.Equal(t, render.MsgNoMatches+"\n", buf.String())
	}
}

func TestTableFormatterTruncatesTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatListing(sampleListing(), &buf))

	output := buf.String()
	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "Frankenstein; Or, The Modern Promethe...")
	assert.Contains(t, output, "Page 1 of 1 (2 books)")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatListing(sampleListing(), &buf))

	var doc ListingJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "a", doc.Query)
	assert.Equal(t, 2, doc.Total)
	require.Len(t, doc.Books, 2)
	assert.Equal(t, domain.DefaultCover, doc.Books[1].Cover)
	assert.True(t, doc.Books[1].Wishlisted)
}

func TestFormatGenres(t *testing.T) {
	genres := []string{"Horror", "Gothic fiction"}

	var simple bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatGenres(genres, &simple))
	assert.Equal(t, "Horror\nGothic fiction\n", simple.String())

	var table bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatGenres(genres, &table))
	assert.Contains(t, table.String(), "2    Gothic fiction")

	var js bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatGenres(nil, &js))
	assert.Equal(t, "[]\n", js.String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc  ", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdefgh", 5))
	assert.Equal(t, "ab", truncateString("abcdefgh", 2))
	assert.Equal(t, "héllo", truncateString("héllo", 5))
}

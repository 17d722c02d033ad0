package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks() []Book {
	return []Book{
		{ID: "1", Title: "Moby Dick; Or, The Whale", Authors: []Person{{Name: "Melville, Herman"}}, Subjects: []string{"Whaling -- Fiction", "Sea stories"}},
		{ID: "2", Title: "Pride and Prejudice", Authors: []Person{{Name: "Austen, Jane"}}, Subjects: []string{"Love stories", "England -- Fiction"}},
		{ID: "3", Title: "Frankenstein", Subjects: []string{"Horror tales", "Sea stories"}},
		{ID: "4", Title: "The Great Gatsby"},
		{ID: "5", Title: "ÉMILE", Subjects: []string{"Education"}},
	}
}

func ids(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestCriteria_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty criteria", Criteria{}, true},
		{"query only", Criteria{Query: "moby"}, false},
		{"genre only", Criteria{Genre: "Sea stories"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.IsEmpty())
		})
	}
}

func TestFilterBooks(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"empty criteria matches all", Criteria{}, []string{"1", "2", "3", "4", "5"}},
		{"lowercase query", Criteria{Query: "moby"}, []string{"1"}},
		{"uppercase query", Criteria{Query: "MOBY"}, []string{"1"}},
		{"mixed case query", Criteria{Query: "mOBy"}, []string{"1"}},
		{"substring in middle", Criteria{Query: "and"}, []string{"2"}},
		{"query matching several keeps order", Criteria{Query: "e"}, []string{"1", "2", "3", "4", "5"}},
		{"unicode query", Criteria{Query: "émile"}, []string{"5"}},
		{"genre exact match", Criteria{Genre: "Sea stories"}, []string{"1", "3"}},
		{"genre is not substring match", Criteria{Genre: "Sea"}, []string{}},
		{"genre excludes books without subjects", Criteria{Genre: "Education"}, []string{"5"}},
		{"query and genre combined", Criteria{Query: "frank", Genre: "Sea stories"}, []string{"3"}},
		{"query and genre disjoint", Criteria{Query: "moby", Genre: "Horror tales"}, []string{}},
		{"no match", Criteria{Query: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterBooks(books, tt.criteria)))
		})
	}
}

func TestFilterBooks_ResultIsOrderedSubsequence(t *testing.T) {
	books := sampleBooks()
	for _, criteria := range []Criteria{{Query: "e"}, {Genre: "Sea stories"}, {Query: "the", Genre: "Whaling -- Fiction"}} {
		result := FilterBooks(books, criteria)

		pos := 0
		for _, b := range result {
			assert.True(t, criteria.Matches(b), "book %s should match %+v", b.ID, criteria)
			for pos < len(books) && books[pos].ID != b.ID {
				pos++
			}
			require.Less(t, pos, len(books), "result must be a subsequence of the collection")
			pos++
		}
	}
}

func TestFilterBooks_EmptyCollection(t *testing.T) {
	assert.NotNil(t, FilterBooks(nil, Criteria{Query: "x"}))
	assert.Empty(t, FilterBooks(nil, Criteria{}))
}

func TestFilterBooks_DoesNotAliasInput(t *testing.T) {
	books := sampleBooks()
	result := FilterBooks(books, Criteria{})
	result[0] = Book{ID: "changed"}
	assert.Equal(t, "1", books[0].ID)
}

func TestFilterBooks_MobyScenario(t *testing.T) {
	books := make([]Book, 0, 30)
	for i := 0; i < 29; i++ {
		books = append(books, Book{ID: fmt.Sprint(i), Title: fmt.Sprintf("Book %d", i)})
	}
	books = append(books, Book{ID: "moby", Title: "Moby Dick"})

	for _, q := range []string{"moby", "MOBY", "Moby", "mObY"} {
		assert.Len(t, FilterBooks(books, Criteria{Query: q}), 1, q)
	}
}

func TestGenres(t *testing.T) {
	got := Genres(sampleBooks())
	assert.Equal(t, []string{
		"Whaling -- Fiction",
		"Sea stories",
		"Love stories",
		"England -- Fiction",
		"Horror tales",
		"Education",
	}, got)
	assert.Empty(t, Genres(nil))
}

func TestBookDisplayFallbacks(t *testing.T) {
	bare := Book{ID: "9", Title: "Untitled"}
	assert.Equal(t, UnknownAuthor, bare.DisplayAuthor())
	assert.Equal(t, UnknownGenre, bare.DisplayGenre())
	assert.Equal(t, DefaultCover, bare.DisplayCover())
	assert.Equal(t, NoDescription, bare.DisplayDescription())

	full := sampleBooks()[0]
	full.CoverURL = "https://example.org/cover.jpg"
	full.Description = "A whale of a tale."
	assert.Equal(t, "Melville, Herman", full.DisplayAuthor())
	assert.Equal(t, "Whaling -- Fiction", full.DisplayGenre())
	assert.Equal(t, "https://example.org/cover.jpg", full.DisplayCover())
	assert.Equal(t, "A whale of a tale.", full.DisplayDescription())
}

func TestNewCollection(t *testing.T) {
	c := NewCollection(sampleBooks())
	assert.Equal(t, 5, c.Len())
	assert.Contains(t, c.Genres, "Education")
}

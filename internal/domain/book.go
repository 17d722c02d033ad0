// Package domain provides the domain layer for the book catalog.
// It contains the book model, the filter engine and the pager.
package domain

// Display fallbacks for optional book fields.
const (
	UnknownAuthor = "Unknown Author"
	UnknownGenre  = "Unknown Genre"
	DefaultCover  = "default-cover.jpg"
	NoDescription = "No description available."
)

// Person is a book author as reported by the catalog.
type Person struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty"`
}

// Book is a single catalog entry. Books are immutable once loaded.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []Person `json:"authors"`
	Subjects      []string `json:"subjects"`
	Bookshelves   []string `json:"bookshelves,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	DownloadCount int      `json:"download_count"`
	Description   string   `json:"description,omitempty"`
}

// DisplayAuthor returns the first author's name or UnknownAuthor.
func (b Book) DisplayAuthor() string {
	if len(b.Authors) == 0 || b.Authors[0].Name == "" {
		return UnknownAuthor
	}
	return b.Authors[0].Name
}

// DisplayGenre returns the first subject or UnknownGenre.
func (b Book) DisplayGenre() string {
	if len(b.Subjects) == 0 {
		return UnknownGenre
	}
	return b.Subjects[0]
}

// DisplayCover returns the cover URL or DefaultCover.
func (b Book) DisplayCover() string {
	if b.CoverURL == "" {
		return DefaultCover
	}
	return b.CoverURL
}

// DisplayDescription returns the description or NoDescription.
func (b Book) DisplayDescription() string {
	if b.Description == "" {
		return NoDescription
	}
	return b.Description
}

// HasSubject reports whether subject is one of the book's subjects (exact match).
func (b Book) HasSubject(subject string) bool {
	for _, s := range b.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Collection is the full, unfiltered set of books in source order.
type Collection struct {
	Books  []Book
	Genres []string
}

// NewCollection builds a collection and derives its genre vocabulary.
func NewCollection(books []Book) Collection {
	return Collection{Books: books, Genres: Genres(books)}
}

// Len returns the number of books.
func (c Collection) Len() int {
	return len(c.Books)
}

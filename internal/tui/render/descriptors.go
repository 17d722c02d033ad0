// Package render turns browser state into card and pagination descriptors
// and draws them with lipgloss.
package render

import "github.com/cristianoliveira/bookshelf/internal/domain"

// Card is the display form of one book.
type Card struct {
	ID         string
	Title      string
	Author     string
	Genre      string
	Cover      string
	Wishlisted bool
}

// Cards maps visible books to cards. isMember may be nil.
func Cards(items []domain.Book, isMember func(id string) bool) []Card {
	cards := make([]Card, 0, len(items))
	for _, b := range items {
		cards = append(cards, CardFor(b, isMember != nil && isMember(b.ID)))
	}
	return cards
}

// CardFor builds the card of a single book.
func CardFor(b domain.Book, wishlisted bool) Card {
	return Card{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.DisplayAuthor(),
		Genre:      b.DisplayGenre(),
		Cover:      b.DisplayCover(),
		Wishlisted: wishlisted,
	}
}

// Button is a prev/next control.
type Button struct {
	Disabled bool
}

// PageButton is one numbered page control.
type PageButton struct {
	Number int
	Active bool
}

// Pagination describes the pagination controls of a page.
type Pagination struct {
	Prev  Button
	Pages []PageButton
	Next  Button
}

// Controls builds the pagination controls for page.
func Controls(page domain.Page) Pagination {
	count := page.PageCount
	if count < 1 {
		count = 1
	}
	pages := make([]PageButton, count)
	for i := range pages {
		pages[i] = PageButton{Number: i + 1, Active: i+1 == page.CurrentPage}
	}
	return Pagination{
		Prev:  Button{Disabled: !page.HasPrev()},
		Pages: pages,
		Next:  Button{Disabled: !page.HasNext()},
	}
}

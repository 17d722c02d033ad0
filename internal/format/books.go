package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SimpleFormatter prints one line per book: wishlist mark, id, title, author and genre.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatListing formats a page in simple format.
func (f *SimpleFormatter) FormatListing(listing Listing, writer io.Writer) error {
	if len(listing.Cards) == 0 {
		_, err := fmt.Fprintln(writer, render.MsgNoMatches)
		return err
	}
	for _, c := range listing.Cards {
		_, err := fmt.Fprintf(writer, "%s %-8s %s by %s [%s]\n", wishlistMark(c), c.ID, c.Title, c.Author, c.Genre)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer, render.PageStatus(listing.Page))
	return err
}

// FormatGenres prints one genre per line.
func (f *SimpleFormatter) FormatGenres(genres []string, writer io.Writer) error {
	for _, g := range genres {
		if _, err := fmt.Fprintln(writer, g); err != nil {
			return err
		}
	}
	return nil
}

// TableFormatter formats books in a table with headers.
type TableFormatter struct {
	titleWidth  int
	authorWidth int
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{titleWidth: 40, authorWidth: 24}
}

// FormatListing formats a page in table format.
func (f *TableFormatter) FormatListing(listing Listing, writer io.Writer) error {
	if len(listing.Cards) == 0 {
		_, err := fmt.Fprintln(writer, render.MsgNoMatches)
		return err
	}
	header := fmt.Sprintf("W  %-8s  %s  %s  GENRE", "ID", padRight("TITLE", f.titleWidth), padRight("AUTHOR", f.authorWidth))
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, header, colors.Reset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, strings.Repeat("-", len(header)), colors.Reset); err != nil {
		return err
	}
	for _, c := range listing.Cards {
		_, err := fmt.Fprintf(writer, "%s  %-8s  %s  %s  %s\n",
			wishlistMark(c), c.ID, truncateString(c.Title, f.titleWidth), truncateString(c.Author, f.authorWidth), c.Genre)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "%s (%d books)\n", render.PageStatus(listing.Page), listing.Page.Total)
	return err
}

// FormatGenres prints genres numbered under a header.
func (f *TableFormatter) FormatGenres(genres []string, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s#    GENRE%s\n", colors.Blue, colors.Reset); err != nil {
		return err
	}
	for i, g := range genres {
		if _, err := fmt.Fprintf(writer, "%-4d %s\n", i+1, g); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats output as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ListingJSON is the JSON document written for a listing.
type ListingJSON struct {
	Query     string     `json:"query"`
	Genre     string     `json:"genre"`
	Page      int        `json:"page"`
	PageCount int        `json:"page_count"`
	PageSize  int        `json:"page_size"`
	Total     int        `json:"total"`
	Books     []BookJSON `json:"books"`
}

// BookJSON is one book inside ListingJSON.
type BookJSON struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	Cover      string `json:"cover"`
	Wishlisted bool   `json:"wishlisted"`
}

// FormatListing formats a page in JSON format.
func (f *JSONFormatter) FormatListing(listing Listing, writer io.Writer) error {
	doc := ListingJSON{
		Query:     listing.Query,
		Genre:     listing.Genre,
		Page:      listing.Page.CurrentPage,
		PageCount: listing.Page.PageCount,
		PageSize:  listing.Page.PageSize,
		Total:     listing.Page.Total,
		Books:     make([]BookJSON, 0, len(listing.Cards)),
	}
	for _, c := range listing.Cards {
		doc.Books = append(doc.Books, BookJSON(c))
	}
	return f.encode(doc, writer)
}

// FormatGenres formats genres as a JSON array.
func (f *JSONFormatter) FormatGenres(genres []string, writer io.Writer) error {
	if genres == nil {
		genres = []string{}
	}
	return f.encode(genres, writer)
}

func (f *JSONFormatter) encode(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Helper functions

func wishlistMark(c render.Card) string {
	if c.Wishlisted {
		return "*"
	}
	return " "
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncateString fits s into width runes, adding "..." if truncated.
func truncateString(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return padRight(s, width)
	}
	if width < 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

package wishlist

import (
	"context"

	"github.com/cristianoliveira/bookshelf/internal/domain"
)

// Fetcher loads a single book by identifier.
type Fetcher interface {
	FetchBook(ctx context.Context, id string) (domain.Book, error)
}

// Item is one resolved wishlist entry: either Book or Err is set.
type Item struct {
	ID   string
	Book domain.Book
	Err  error
}

// Details is the resolved wishlist in stored order.
type Details struct {
	Items []Item
}

// Empty reports whether the wishlist had no entries.
func (d Details) Empty() bool {
	return len(d.Items) == 0
}

// Failed returns the entries that could not be fetched.
func (d Details) Failed() []Item {
	var failed []Item
	for _, item := range d.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// Books returns the entries that were fetched.
func (d Details) Books() []domain.Book {
	books := make([]domain.Book, 0, len(d.Items))
	for _, item := range d.Items {
		if item.Err == nil {
			books = append(books, item.Book)
		}
	}
	return books
}

// Resolve fetches every id in order. A failed fetch is recorded on its item
// and does not stop the others. onItem, when set, is called after each fetch.
func Resolve(ctx context.Context, ids []string, fetcher Fetcher, onItem func(Item)) Details {
	details := Details{Items: make([]Item, 0, len(ids))}
	for _, id := range ids {
		item := Item{ID: id}
		if err := ctx.Err(); err != nil {
			item.Err = err
		} else {
			item.Book, item.Err = fetcher.FetchBook(ctx, id)
		}
		details.Items = append(details.Items, item)
		if onItem != nil {
			onItem(item)
		}
	}
	return details
}

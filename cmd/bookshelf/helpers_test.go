package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/cristianoliveira/bookshelf/internal/catalog"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/storage"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/spf13/cobra"
)

type fakeClient struct {
	books         []domain.Book
	collectionErr error
	bookErr       map[string]error
	wl            *wishlist.Store
	wlErr         error
	metrics       *metrics.Metrics
}

func newFakeClient(books ...domain.Book) *fakeClient {
	return &fakeClient{
		books:   books,
		bookErr: map[string]error{},
		wl:      wishlist.New(storage.NewMemoryStorage(), ""),
	}
}

func (f *fakeClient) FetchCollection(ctx context.Context) (domain.Collection, error) {
	if f.collectionErr != nil {
		return domain.Collection{}, f.collectionErr
	}
	return domain.NewCollection(f.books), nil
}

func (f *fakeClient) FetchBook(ctx context.Context, id string) (domain.Book, error) {
	if err := f.bookErr[id]; err != nil {
		return domain.Book{}, err
	}
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Book{}, catalog.ErrNotFound
}

func (f *fakeClient) Wishlist() (*wishlist.Store, error) {
	if f.wlErr != nil {
		return nil, f.wlErr
	}
	return f.wl, nil
}

func (f *fakeClient) Metrics() *metrics.Metrics { return f.metrics }

func (f *fakeClient) Version() string { return "1.2.3" }

func book(id, title string, subjects ...string) domain.Book {
	return domain.Book{
		ID:       id,
		Title:    title,
		Authors:  []domain.Person{{Name: "Author " + id}},
		Subjects: subjects,
	}
}

func sampleBooks() []domain.Book {
	return []domain.Book{
		book("1", "Pride and Prejudice", "Romance", "England"),
		book("2", "Frankenstein", "Horror"),
		book("3", "Dracula", "Horror"),
		book("4", "Emma", "Romance"),
		book("5", "The Pride of Jennico", "Adventure"),
	}
}

// execute runs c with args and returns stdout and stderr.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), errOut.String(), err
}

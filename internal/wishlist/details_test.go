package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	books map[string]domain.Book
	calls []string
}

func (f *fakeFetcher) FetchBook(_ context.Context, id string) (domain.Book, error) {
	f.calls = append(f.calls, id)
	b, ok := f.books[id]
	if !ok {
		return domain.Book{}, errors.New("not found")
	}
	return b, nil
}

func TestResolveKeepsOrderAndIsolatesFailures(t *testing.T) {
	fetcher := &fakeFetcher{books: map[string]domain.Book{
		"1": {ID: "1", Title: "Frankenstein"},
		"3": {ID: "3", Title: "Dracula"},
	}}

	var seen []string
	details := Resolve(context.Background(), []string{"3", "2", "1"}, fetcher, func(item Item) {
		seen = append(seen, item.ID)
	})

	require.Len(t, details.Items, 3)
	assert.False(t, details.Empty())
	assert.Equal(t, []string{"3", "2", "1"}, fetcher.calls)
	assert.Equal(t, []string{"3", "2", "1"}, seen)

	failed := details.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "2", failed[0].ID)

	books := details.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "Dracula", books[0].Title)
	assert.Equal(t, "Frankenstein", books[1].Title)
}

func TestResolveEmpty(t *testing.T) {
	details := Resolve(context.Background(), nil, &fakeFetcher{}, nil)
	assert.True(t, details.Empty())
	assert.Empty(t, details.Failed())
}

func TestResolveStopsFetchingAfterCancel(t *testing.T) {
	fetcher := &fakeFetcher{books: map[string]domain.Book{"1": {ID: "1"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	details := Resolve(ctx, []string{"1", "2"}, fetcher, nil)
	assert.Empty(t, fetcher.calls)
	assert.Len(t, details.Failed(), 2)
}

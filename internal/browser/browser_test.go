package browser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/storage"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every render pass.
type recorder struct {
	views []View
	// members holds membership of the first visible item at render time.
	members []bool
}

func (r *recorder) Render(v View, isMember Membership) {
	r.views = append(r.views, v)
	if len(v.Page.Items) > 0 {
		r.members = append(r.members, isMember(v.Page.Items[0].ID))
	}
}

func (r *recorder) last() View {
	return r.views[len(r.views)-1]
}

// failingWishlist rejects every write.
type failingWishlist struct{ member map[string]bool }

func (f failingWishlist) IsMember(id string) bool { return f.member[id] }
func (f failingWishlist) Toggle(id string) (bool, error) {
	return f.member[id], errors.New("quota exceeded")
}
func (f failingWishlist) Count() int { return len(f.member) }

func makeBooks(n int) []domain.Book {
	books := make([]domain.Book, n)
	for i := range books {
		books[i] = domain.Book{
			ID:       fmt.Sprintf("%d", i+1),
			Title:    fmt.Sprintf("Book %02d", i+1),
			Subjects: []string{fmt.Sprintf("Genre %d", i%3)},
		}
	}
	return books
}

func newBrowser(t *testing.T, opts ...Option) (*Browser, *recorder) {
	t.Helper()
	rec := &recorder{}
	wl := wishlist.New(storage.NewMemoryStorage(), "wishlist")
	b := New(wl, append([]Option{WithRenderer(rec)}, opts...)...)
	return b, rec
}

func TestInitialStateIsLoading(t *testing.T) {
	b, rec := newBrowser(t)

	v := b.Snapshot()
	assert.Equal(t, StatusLoading, v.Status)
	assert.Equal(t, 1, v.Page.PageCount)
	assert.Equal(t, 1, v.Page.CurrentPage)
	assert.Empty(t, v.Page.Items)
	assert.Empty(t, rec.views, "no render before the first action")
}

func TestLoadedShowsFirstPage(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(25)))

	require.Len(t, rec.views, 1)
	v := rec.last()
	assert.Equal(t, StatusReady, v.Status)
	assert.Equal(t, 3, v.Page.PageCount)
	assert.Len(t, v.Page.Items, 10)
	assert.Equal(t, []string{"Genre 0", "Genre 1", "Genre 2"}, v.Genres)
}

func TestLoadFailed(t *testing.T) {
	b, rec := newBrowser(t)
	loadErr := errors.New("network down")
	b.LoadFailed(loadErr)

	v := rec.last()
	assert.Equal(t, StatusLoadFailed, v.Status)
	assert.ErrorIs(t, v.Err, loadErr)
	assert.Empty(t, v.Page.Items)
	assert.Equal(t, "load_failed", v.Status.String())
}

func TestPagingScenario(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(25)))

	b.OnPageClick(3)
	assert.Equal(t, 3, rec.last().Page.CurrentPage)
	assert.Len(t, rec.last().Page.Items, 5)

	b.OnPageClick(5)
	assert.Equal(t, 3, rec.last().Page.CurrentPage, "out of range clamps to last page")

	b.OnNextPage()
	assert.Equal(t, 3, rec.last().Page.CurrentPage)
	assert.False(t, rec.last().Page.HasNext())

	b.OnPrevPage()
	b.OnPrevPage()
	b.OnPrevPage()
	assert.Equal(t, 1, rec.last().Page.CurrentPage)
	assert.False(t, rec.last().Page.HasPrev())
}

func TestEveryActionRendersOnce(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(25)))
	b.OnQueryChange("book")
	b.OnGenreChange("Genre 1")
	b.OnPageSizeChange(5)
	b.OnPageClick(2)
	b.OnNextPage()
	b.OnPrevPage()
	b.OnWishlistToggle("1")
	b.ClearFilters()

	assert.Len(t, rec.views, 9)
}

func TestFilterChangesResetPage(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(25)))

	b.OnPageClick(3)
	b.OnQueryChange("BOOK")
	assert.Equal(t, 1, rec.last().Page.CurrentPage)
	assert.Equal(t, 25, rec.last().Page.Total)

	b.OnPageClick(2)
	b.OnGenreChange("Genre 0")
	v := rec.last()
	assert.Equal(t, 1, v.Page.CurrentPage)
	assert.Equal(t, 9, v.Page.Total)
	assert.Equal(t, "Genre 0", v.Genre)
	for _, book := range b.Filtered() {
		assert.True(t, book.HasSubject("Genre 0"))
	}

	b.OnGenreChange("")
	assert.Equal(t, 25, rec.last().Page.Total)
}

func TestClearFiltersIsOneAction(t *testing.T) {
	m := metrics.New()
	b, rec := newBrowser(t, WithMetrics(m))
	b.Loaded(domain.NewCollection(makeBooks(25)))
	b.OnQueryChange("book 1")
	b.OnGenreChange("Genre 0")
	b.OnPageClick(2)
	before := len(rec.views)

	b.ClearFilters()

	require.Len(t, rec.views, before+1)
	v := rec.last()
	assert.Empty(t, v.Query)
	assert.Empty(t, v.Genre)
	assert.Equal(t, 1, v.Page.CurrentPage)
	assert.Equal(t, 25, v.Page.Total)

	count, err := testutil.GatherAndCount(m.Registry(), "bookshelf_browser_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 5, count, "loaded, query, genre, page_click and clear_filters series")
}

func TestLoadedDerivesMissingGenres(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.Collection{Books: makeBooks(4)})

	assert.Equal(t, []string{"Genre 0", "Genre 1", "Genre 2"}, rec.last().Genres)

	b.Loaded(domain.Collection{Books: makeBooks(4), Genres: []string{"Genre 2"}})
	assert.Equal(t, []string{"Genre 2"}, rec.last().Genres, "a given vocabulary is kept")
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(25)))
	b.OnPageClick(3)

	b.OnPageSizeChange(20)
	v := rec.last()
	assert.Equal(t, 1, v.Page.CurrentPage)
	assert.Equal(t, 2, v.Page.PageCount)
	assert.Equal(t, 20, v.Page.PageSize)

	b.OnPageSizeChange(0)
	assert.Equal(t, 1, rec.last().Page.PageSize)
}

func TestMobyScenario(t *testing.T) {
	books := []domain.Book{
		{ID: "2701", Title: "Moby Dick; Or, The Whale"},
		{ID: "84", Title: "Frankenstein"},
		{ID: "1342", Title: "Pride and Prejudice"},
	}
	for _, q := range []string{"moby", "MOBY", "mObY"} {
		b, rec := newBrowser(t)
		b.Loaded(domain.NewCollection(books))
		b.OnQueryChange(q)
		assert.Equal(t, 1, rec.last().Page.Total, q)
		assert.Equal(t, q, rec.last().Query)
	}
}

func TestActionsBeforeLoadAreSafe(t *testing.T) {
	b, rec := newBrowser(t)
	b.OnQueryChange("x")
	b.OnNextPage()
	b.OnPageClick(4)

	v := rec.last()
	assert.Equal(t, StatusLoading, v.Status)
	assert.Equal(t, 1, v.Page.CurrentPage)

	b.Loaded(domain.NewCollection(makeBooks(3)))
	assert.Equal(t, 0, rec.last().Page.Total, "criteria typed while loading still apply")
}

func TestWishlistToggleUpdatesBadgeAndMembership(t *testing.T) {
	b, rec := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(5)))

	b.OnWishlistToggle("1")
	assert.Equal(t, 1, rec.last().WishlistCount)
	assert.True(t, b.IsMember("1"))
	assert.True(t, rec.members[len(rec.members)-1])

	b.OnWishlistToggle("1")
	assert.Equal(t, 0, rec.last().WishlistCount)
	assert.False(t, rec.members[len(rec.members)-1])
	assert.Empty(t, rec.last().Notice)
}

func TestWishlistToggleFailureBecomesNotice(t *testing.T) {
	rec := &recorder{}
	b := New(failingWishlist{member: map[string]bool{"1": true}}, WithRenderer(rec))
	b.Loaded(domain.NewCollection(makeBooks(2)))

	b.OnWishlistToggle("1")
	v := rec.last()
	assert.Contains(t, v.Notice, "quota exceeded")
	assert.True(t, b.IsMember("1"))

	b.OnNextPage()
	assert.Empty(t, rec.last().Notice, "notice lasts one action")
}

func TestSnapshotIsACopy(t *testing.T) {
	b, _ := newBrowser(t)
	b.Loaded(domain.NewCollection(makeBooks(4)))

	v := b.Snapshot()
	v.Genres[0] = "mutated"
	assert.NotEqual(t, "mutated", b.Snapshot().Genres[0])

	filtered := b.Filtered()
	filtered[0].Title = "mutated"
	assert.Equal(t, "Book 01", b.Filtered()[0].Title)
}

func TestWithPageSizeAndMetrics(t *testing.T) {
	m := metrics.New()
	b, rec := newBrowser(t, WithPageSize(5), WithMetrics(m))
	b.Loaded(domain.NewCollection(makeBooks(12)))
	b.OnNextPage()
	b.OnNextPage()

	assert.Equal(t, 3, rec.last().Page.PageCount)
	count, err := testutil.GatherAndCount(m.Registry(), "bookshelf_browser_actions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "loaded and next_page series")
}

func TestRendererFunc(t *testing.T) {
	calls := 0
	b := New(wishlist.New(storage.NewMemoryStorage(), ""), WithRenderer(RendererFunc(func(View, Membership) {
		calls++
	})))
	b.Loaded(domain.NewCollection(nil))
	assert.Equal(t, 1, calls)
}

// Package browser owns the in-memory collection and derives the filtered,
// paginated view on every user action.
package browser

import (
	"fmt"

	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
)

// Status is the collection load status.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusLoadFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusLoadFailed:
		return "load_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Action names used for metrics.
const (
	ActionLoaded         = "loaded"
	ActionLoadFailed     = "load_failed"
	ActionQuery          = "query"
	ActionGenre          = "genre"
	ActionClearFilters   = "clear_filters"
	ActionPageSize       = "page_size"
	ActionPageClick      = "page_click"
	ActionNextPage       = "next_page"
	ActionPrevPage       = "prev_page"
	ActionWishlistToggle = "wishlist_toggle"
)

// Wishlist is the membership store the browser toggles.
type Wishlist interface {
	IsMember(id string) bool
	Toggle(id string) (bool, error)
	Count() int
}

// Membership reports whether a book id is wishlisted.
type Membership func(id string) bool

// View is a read-only snapshot handed to renderers.
type View struct {
	Status        Status
	Err           error
	Notice        string
	Page          domain.Page
	Query         string
	Genre         string
	Genres        []string
	WishlistCount int
}

// Renderer is called once after every action.
type Renderer interface {
	Render(view View, isMember Membership)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(view View, isMember Membership)

// Render calls f.
func (f RendererFunc) Render(view View, isMember Membership) { f(view, isMember) }

// Browser is the result-set manager. It is not safe for concurrent use;
// callers serialize actions the way an event loop does.
type Browser struct {
	collection domain.Collection
	criteria   domain.Criteria
	filtered   []domain.Book
	pager      *domain.Pager
	page       domain.Page

	status Status
	err    error
	notice string

	wishlist Wishlist
	renderer Renderer
	metrics  *metrics.Metrics
}

// Option configures a Browser.
type Option func(*Browser)

// WithPageSize sets the initial page size.
func WithPageSize(n int) Option {
	return func(b *Browser) { b.pager = domain.NewPager(n) }
}

// WithRenderer sets the renderer called after every action.
func WithRenderer(r Renderer) Option {
	return func(b *Browser) { b.renderer = r }
}

// WithMetrics counts actions on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Browser) { b.metrics = m }
}

// New creates a browser in the loading state with an empty collection.
func New(wishlist Wishlist, opts ...Option) *Browser {
	b := &Browser{
		collection: domain.NewCollection(nil),
		filtered:   []domain.Book{},
		pager:      domain.NewPager(domain.DefaultPageSize),
		status:     StatusLoading,
		wishlist:   wishlist,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.page = b.pager.Apply(b.filtered)
	return b
}

// Loaded installs the collection and shows its first page.
func (b *Browser) Loaded(c domain.Collection) {
	b.notice = ""
	if c.Genres == nil {
		c.Genres = domain.Genres(c.Books)
	}
	b.collection = c
	b.status = StatusReady
	b.err = nil
	b.refilter()
	b.commit(ActionLoaded)
}

// LoadFailed records a failed collection load.
func (b *Browser) LoadFailed(err error) {
	b.notice = ""
	b.status = StatusLoadFailed
	b.err = err
	logging.Error("collection load failed", "error", err)
	b.commit(ActionLoadFailed)
}

// OnQueryChange replaces the search text and goes back to page 1.
func (b *Browser) OnQueryChange(q string) {
	b.notice = ""
	b.criteria.Query = q
	b.refilter()
	b.commit(ActionQuery)
}

// OnGenreChange replaces the genre facet and goes back to page 1.
// An empty genre clears the facet.
func (b *Browser) OnGenreChange(g string) {
	b.notice = ""
	b.criteria.Genre = g
	b.refilter()
	b.commit(ActionGenre)
}

// ClearFilters drops the search text and the genre facet in one pass and
// goes back to page 1.
func (b *Browser) ClearFilters() {
	b.notice = ""
	b.criteria = domain.Criteria{}
	b.refilter()
	b.commit(ActionClearFilters)
}

// OnPageSizeChange replaces the page size and goes back to page 1.
func (b *Browser) OnPageSizeChange(n int) {
	b.notice = ""
	b.pager.SetPageSize(n)
	b.page = b.pager.Apply(b.filtered)
	b.commit(ActionPageSize)
}

// OnPageClick jumps to page n, clamped into range.
func (b *Browser) OnPageClick(n int) {
	b.notice = ""
	b.page = b.pager.GoTo(n, b.filtered)
	b.commit(ActionPageClick)
}

// OnNextPage advances one page; no-op on the last page.
func (b *Browser) OnNextPage() {
	b.notice = ""
	b.page = b.pager.Next(b.filtered)
	b.commit(ActionNextPage)
}

// OnPrevPage goes back one page; no-op on the first page.
func (b *Browser) OnPrevPage() {
	b.notice = ""
	b.page = b.pager.Prev(b.filtered)
	b.commit(ActionPrevPage)
}

// OnWishlistToggle toggles id. A failed write is kept as a notice and the
// previous membership stays visible.
func (b *Browser) OnWishlistToggle(id string) {
	b.notice = ""
	if _, err := b.wishlist.Toggle(id); err != nil {
		b.notice = fmt.Sprintf("Could not update wishlist: %v", err)
	}
	b.page = b.pager.Apply(b.filtered)
	b.commit(ActionWishlistToggle)
}

// IsMember reports whether id is wishlisted.
func (b *Browser) IsMember(id string) bool {
	return b.wishlist.IsMember(id)
}

// Snapshot returns the current view.
func (b *Browser) Snapshot() View {
	genres := make([]string, len(b.collection.Genres))
	copy(genres, b.collection.Genres)
	return View{
		Status:        b.status,
		Err:           b.err,
		Notice:        b.notice,
		Page:          b.page,
		Query:         b.criteria.Query,
		Genre:         b.criteria.Genre,
		Genres:        genres,
		WishlistCount: b.wishlist.Count(),
	}
}

// Filtered returns the full filtered view across all pages.
func (b *Browser) Filtered() []domain.Book {
	out := make([]domain.Book, len(b.filtered))
	copy(out, b.filtered)
	return out
}

func (b *Browser) refilter() {
	b.filtered = domain.FilterBooks(b.collection.Books, b.criteria)
	b.pager.Reset()
	b.page = b.pager.Apply(b.filtered)
}

// commit renders the new state. Notices live until the next action.
func (b *Browser) commit(action string) {
	b.metrics.IncAction(action)
	logging.Debug("browser action",
		"action", action,
		"page", b.page.CurrentPage,
		"pages", b.page.PageCount,
		"matches", b.page.Total,
	)
	if b.renderer != nil {
		b.renderer.Render(b.Snapshot(), b.IsMember)
	}
}

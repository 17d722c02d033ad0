package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
)

// loadCollection fetches the collection off the event loop.
func (m *Model) loadCollection() tea.Cmd {
	catalog, ctx := m.catalog, m.ctx
	return func() tea.Msg {
		collection, err := catalog.FetchCollection(ctx)
		return collectionLoadedMsg{collection: collection, err: err}
	}
}

// openDetails switches to the details screen and fetches the book.
func (m *Model) openDetails(id string) tea.Cmd {
	m.details = detailsState{id: id, loading: true}
	m.ui.Open(screenDetails)
	m.ui.GetViewport().GotoTop()

	catalog, ctx := m.catalog, m.ctx
	fetch := func() tea.Msg {
		book, err := catalog.FetchBook(ctx, id)
		return bookLoadedMsg{id: id, book: book, err: err}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *Model) handleBookLoaded(msg bookLoadedMsg) tea.Cmd {
	if msg.id != m.details.id {
		// A stale response for a screen the user already left.
		return nil
	}
	m.details.loading = false
	m.details.book = msg.book
	m.details.err = msg.err
	if msg.err != nil {
		logging.Warn("book details failed", "id", msg.id, "error", msg.err)
	}
	m.refreshDetailsViewport()
	return nil
}

func (m *Model) refreshDetailsViewport() {
	if m.details.loading || m.details.err != nil || m.details.id == "" {
		return
	}
	vp := m.ui.GetViewport()
	vp.SetContent(render.Details(m.details.book, m.wishlist.IsMember(m.details.id), m.ui.GetWidth()))
}

// openWishlist switches to the wishlist screen and fetches every entry.
// Each entry is its own request so one failure does not hide the others.
func (m *Model) openWishlist() tea.Cmd {
	ids := m.wishlist.IDs()
	generation := m.wishlistScreen.generation + 1
	m.wishlistScreen = wishlistState{
		generation: generation,
		items:      make([]wishlist.Item, len(ids)),
		done:       make([]bool, len(ids)),
	}
	m.ui.SetWishlistCursor(0, 0)
	m.ui.Open(screenWishlist)
	if len(ids) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(ids)+1)
	cmds = append(cmds, m.spinner.Tick)
	catalog, ctx := m.catalog, m.ctx
	for i, id := range ids {
		m.wishlistScreen.items[i] = wishlist.Item{ID: id}
		cmds = append(cmds, func() tea.Msg {
			book, err := catalog.FetchBook(ctx, id)
			return wishlistItemMsg{
				generation: generation,
				item:       wishlist.Item{ID: id, Book: book, Err: err},
			}
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWishlistItem(msg wishlistItemMsg) {
	ws := &m.wishlistScreen
	if msg.generation != ws.generation {
		return
	}
	index := -1
	for i, item := range ws.items {
		if item.ID == msg.item.ID && !ws.done[i] {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}
	ws.items[index] = msg.item
	ws.done[index] = true
	if msg.item.Err != nil {
		logging.Warn("wishlist entry failed", "id", msg.item.ID, "error", msg.item.Err)
	}
}

func (m *Model) pendingWishlist() int {
	pending := 0
	for _, done := range m.wishlistScreen.done {
		if !done {
			pending++
		}
	}
	return pending
}

// resolvedWishlist returns the fetched entries in stored order.
func (m *Model) resolvedWishlist() (books wishlist.Details, failed int) {
	for i, item := range m.wishlistScreen.items {
		if !m.wishlistScreen.done[i] {
			continue
		}
		if item.Err != nil {
			failed++
			continue
		}
		books.Items = append(books.Items, item)
	}
	return books, failed
}

// removeWishlistEntry drops id from the wishlist screen.
func (m *Model) removeWishlistEntry(id string) {
	ws := &m.wishlistScreen
	for i, item := range ws.items {
		if item.ID == id {
			ws.items = append(ws.items[:i], ws.items[i+1:]...)
			ws.done = append(ws.done[:i], ws.done[i+1:]...)
			return
		}
	}
}

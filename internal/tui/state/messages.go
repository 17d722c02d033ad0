package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
)

// collectionLoadedMsg carries the result of the initial collection fetch.
type collectionLoadedMsg struct {
	collection domain.Collection
	err        error
}

// bookLoadedMsg carries the result of a details fetch.
type bookLoadedMsg struct {
	id   string
	book domain.Book
	err  error
}

// wishlistItemMsg carries one resolved wishlist entry. generation ties the
// result to the wishlist screen that requested it.
type wishlistItemMsg struct {
	generation int
	item       wishlist.Item
}

// statusClearMsg clears status messages up to and including through.
type statusClearMsg struct {
	through uint64
}

// statusClearAfter returns a command that clears messages up to through
// after d. Messages shown in the meantime get their own timer.
func statusClearAfter(d time.Duration, through uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{through: through}
	})
}

package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/bookshelf/internal/browser"
	"github.com/cristianoliveira/bookshelf/internal/errors"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.ui.IsSearchMode() {
		return m, m.handleSearchKey(msg)
	}

	switch m.ui.Screen() {
	case screenDetails:
		return m.handleDetailsKey(msg)
	case screenWishlist:
		return m.handleWishlistKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleSearchKey feeds the search input. Every change of its value is one
// query action.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitSearch()
		if m.view.Query != "" {
			m.search.SetValue("")
			m.browser.OnQueryChange("")
		}
		return nil
	case tea.KeyEnter:
		m.exitSearch()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.browser.OnQueryChange(value)
	}
	return cmd
}

func (m *Model) enterSearch() tea.Cmd {
	m.ui.SetSearchMode(true)
	m.search.CursorEnd()
	return tea.Batch(m.search.Focus(), textinput.Blink)
}

func (m *Model) exitSearch() {
	m.ui.SetSearchMode(false)
	m.search.Blur()
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		return m, m.enterSearch()
	case "esc":
		if m.view.Query != "" || m.view.Genre != "" {
			m.search.SetValue("")
			m.browser.ClearFilters()
		}
		return m, nil
	}

	if m.view.Status != browser.StatusReady {
		return m, nil
	}

	switch msg.String() {
	case "g":
		m.browser.OnGenreChange(cycle(m.genreOptions(), m.view.Genre, 1))
	case "G":
		m.browser.OnGenreChange(cycle(m.genreOptions(), m.view.Genre, -1))
	case "+", "=":
		m.browser.OnPageSizeChange(nextPageSize(m.view.Page.PageSize, 1))
	case "-", "_":
		m.browser.OnPageSizeChange(nextPageSize(m.view.Page.PageSize, -1))
	case "left", "h", "p":
		m.browser.OnPrevPage()
	case "right", "l", "n":
		m.browser.OnNextPage()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.browser.OnPageClick(int(msg.Runes[0] - '0'))
	case "down", "j":
		m.ui.SetCursor(m.ui.GetCursor() + 1)
		m.ui.AdjustCursorBounds(len(m.view.Page.Items))
	case "up", "k":
		m.ui.SetCursor(m.ui.GetCursor() - 1)
		m.ui.AdjustCursorBounds(len(m.view.Page.Items))
	case "w", " ":
		if book, ok := m.selectedBook(); ok {
			return m, m.toggle(book.ID, book.Title)
		}
	case "enter":
		if book, ok := m.selectedBook(); ok {
			return m, m.openDetails(book.ID)
		}
	case "W":
		return m, m.openWishlist()
	}
	return m, nil
}

func (m *Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.details = detailsState{}
		m.ui.Back()
		return m, nil
	case "w", " ":
		if m.details.loading || m.details.err != nil {
			return m, nil
		}
		cmd := m.toggle(m.details.id, m.details.book.Title)
		m.refreshDetailsViewport()
		return m, cmd
	}
	var cmd tea.Cmd
	vp := m.ui.GetViewport()
	*vp, cmd = vp.Update(msg)
	return m, cmd
}

func (m *Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	resolved, _ := m.resolvedWishlist()
	cursor := m.ui.GetWishlistCursor()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.ui.Back()
	case "down", "j":
		m.ui.SetWishlistCursor(cursor+1, len(resolved.Items))
	case "up", "k":
		m.ui.SetWishlistCursor(cursor-1, len(resolved.Items))
	case "w", " ":
		if cursor < len(resolved.Items) {
			item := resolved.Items[cursor]
			cmd := m.toggle(item.ID, item.Book.Title)
			if !m.wishlist.IsMember(item.ID) {
				m.removeWishlistEntry(item.ID)
				m.ui.SetWishlistCursor(cursor, len(resolved.Items)-1)
			}
			return m, cmd
		}
	case "enter":
		if cursor < len(resolved.Items) {
			return m, m.openDetails(resolved.Items[cursor].ID)
		}
	}
	return m, nil
}

// toggle flips the wishlist membership of id through the browser so the
// badge and cards re-render.
func (m *Model) toggle(id, title string) tea.Cmd {
	m.browser.OnWishlistToggle(id)
	if m.view.Notice != "" {
		return statusClearAfter(statusClearDuration, m.errorHandler.LatestID())
	}
	if m.browser.IsMember(id) {
		return m.showStatus(fmt.Sprintf("Added %q to wishlist", title), errors.MessageTypeSuccess)
	}
	return m.showStatus(fmt.Sprintf("Removed %q from wishlist", title), errors.MessageTypeInfo)
}

// genreOptions returns the genre facet values: "" (all) then the vocabulary.
func (m *Model) genreOptions() []string {
	return append([]string{""}, m.view.Genres...)
}

// cycle returns the option step positions away from current, wrapping.
// An unknown current value starts from the first option.
func cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return ""
	}
	index := 0
	for i, o := range options {
		if o == current {
			index = i
			break
		}
	}
	n := len(options)
	return options[((index+step)%n+n)%n]
}

// nextPageSize moves to the next larger (dir > 0) or smaller (dir < 0)
// page size, wrapping around.
func nextPageSize(current, dir int) int {
	if dir > 0 {
		for _, size := range pageSizes {
			if size > current {
				return size
			}
		}
		return pageSizes[0]
	}
	for i := len(pageSizes) - 1; i >= 0; i-- {
		if pageSizes[i] < current {
			return pageSizes[i]
		}
	}
	return pageSizes[len(pageSizes)-1]
}

package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/bookshelf/internal/browser"
	"github.com/cristianoliveira/bookshelf/internal/errors"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
)

var statusStyles = map[errors.MessageType]lipgloss.Style{
	errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Header(render.HeaderState{
		Query:         m.view.Query,
		Genre:         m.view.Genre,
		WishlistCount: m.view.WishlistCount,
		Total:         m.view.Page.Total,
		Width:         m.ui.GetWidth(),
	}))
	s.WriteString("\n")
	if m.ui.IsSearchMode() || m.view.Query != "" {
		s.WriteString(m.search.View())
	}
	s.WriteString("\n")

	switch m.ui.Screen() {
	case screenDetails:
		s.WriteString(m.detailsView())
	case screenWishlist:
		s.WriteString(m.wishlistView())
	default:
		s.WriteString(m.browseView())
	}

	s.WriteString("\n")
	if status := m.statusLine(); status != "" {
		s.WriteString(status)
		s.WriteString("\n")
	}
	s.WriteString(render.Footer(render.FooterState{
		SearchMode:  m.ui.IsSearchMode(),
		DetailsMode: m.ui.Screen() == screenDetails,
		Wishlist:    m.ui.Screen() == screenWishlist,
	}))
	return s.String()
}

func (m *Model) browseView() string {
	switch m.view.Status {
	case browser.StatusLoading:
		return fmt.Sprintf("%s %s", m.spinner.View(), render.MsgLoading)
	case browser.StatusLoadFailed:
		return render.ErrorPanel(render.MsgLoadFailed)
	}

	cards := render.Cards(m.view.Page.Items, m.isMember)
	var s strings.Builder
	s.WriteString(render.CardList(cards, m.ui.GetCursor(), m.ui.GetWidth()))
	s.WriteString("\n\n")
	s.WriteString(render.PaginationView(render.Controls(m.view.Page)))
	s.WriteString("  ")
	s.WriteString(render.PageStatus(m.view.Page))
	s.WriteString("  ")
	s.WriteString(m.paginator.View())
	s.WriteString(fmt.Sprintf("  (%d per page)", m.view.Page.PageSize))
	return s.String()
}

func (m *Model) detailsView() string {
	switch {
	case m.details.loading:
		return fmt.Sprintf("%s %s", m.spinner.View(), "Loading book details...")
	case m.details.err != nil:
		return render.ErrorPanel(render.MsgDetailsFailed)
	}
	return m.ui.GetViewport().View()
}

func (m *Model) wishlistView() string {
	resolved, failed := m.resolvedWishlist()
	pending := m.pendingWishlist()

	cards := make([]render.Card, 0, len(resolved.Items))
	for _, item := range resolved.Items {
		cards = append(cards, render.CardFor(item.Book, m.wishlist.IsMember(item.ID)))
	}
	view := render.Wishlist(render.WishlistState{
		Cards:    cards,
		Failed:   failed,
		Pending:  pending,
		Selected: m.ui.GetWishlistCursor(),
		Width:    m.ui.GetWidth(),
	})
	if pending > 0 {
		view = m.spinner.View() + " " + view
	}
	return view
}

// statusLine returns the latest status message, styled by its type.
func (m *Model) statusLine() string {
	msg, ok := m.errorHandler.GetLatest()
	if !ok {
		return ""
	}
	style, ok := statusStyles[msg.Type]
	if !ok {
		return msg.Text
	}
	return style.Render(msg.Text)
}

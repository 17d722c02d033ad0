package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/domain"
)

// User-facing messages.
const (
	MsgLoadFailed    = "Error fetching books. Please try again later."
	MsgDetailsFailed = "Error loading book details."
	MsgWishlistEmpty = "Your wishlist is empty."
	MsgNoMatches     = "No books match your search."
	MsgLoading       = "Loading books..."
)

const (
	heartOn          = "♥"
	heartOff         = "♡"
	cursorSymbol     = "›"
	defaultWidth     = 80
	idWidth          = 7
	maxVisiblePages  = 11
	pageGapIndicator = "…"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	heartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Foreground(lipgloss.Color("0"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ansiColorNumber(colors.Red))).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ansiColorNumber(colors.Red))).
			Padding(0, 1)
	activePageStyle = lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
)

// HeaderState defines the inputs needed to render the header.
type HeaderState struct {
	Query         string
	Genre         string
	WishlistCount int
	Total         int
	Width         int
}

// Header renders the title bar with the active filters and the wishlist badge.
func Header(state HeaderState) string {
	left := titleStyle.Render("bookshelf")
	var filters []string
	if state.Query != "" {
		filters = append(filters, fmt.Sprintf("search: %q", state.Query))
	}
	if state.Genre != "" {
		filters = append(filters, "genre: "+state.Genre)
	}
	filters = append(filters, fmt.Sprintf("%d books", state.Total))
	left += "  " + mutedStyle.Render(strings.Join(filters, "  ·  "))

	badge := heartStyle.Render(fmt.Sprintf("%s %d", heartOn, state.WishlistCount))

	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + badge
}

// CardRow renders one card as a single line.
func CardRow(card Card, selected bool, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	heart := heartOff
	if card.Wishlisted {
		heart = heartOn
	}
	cursor := " "
	if selected {
		cursor = cursorSymbol
	}
	id := fmt.Sprintf("#%-*s", idWidth-1, card.ID)
	meta := fmt.Sprintf("by %s · %s", card.Author, card.Genre)

	line := fmt.Sprintf("%s %s %s %s  %s", cursor, heart, id, card.Title, meta)
	line = truncate(line, width)

	if selected {
		return selectedStyle.Render(line)
	}
	if card.Wishlisted {
		return strings.Replace(line, heart, heartStyle.Render(heart), 1)
	}
	return line
}

// CardList renders cards with the selected index highlighted.
func CardList(cards []Card, selected int, width int) string {
	if len(cards) == 0 {
		return mutedStyle.Render(MsgNoMatches)
	}
	rows := make([]string, 0, len(cards))
	for i, c := range cards {
		rows = append(rows, CardRow(c, i == selected, width))
	}
	return strings.Join(rows, "\n")
}

// PaginationView renders the pagination controls on one line. Long page
// ranges are windowed around the active page.
func PaginationView(p Pagination) string {
	prev := "‹ Prev"
	if p.Prev.Disabled {
		prev = mutedStyle.Render(prev)
	}
	next := "Next ›"
	if p.Next.Disabled {
		next = mutedStyle.Render(next)
	}

	parts := []string{prev}
	for _, item := range visiblePages(p.Pages) {
		switch {
		case item.Number == 0:
			parts = append(parts, mutedStyle.Render(pageGapIndicator))
		case item.Active:
			parts = append(parts, activePageStyle.Render("["+strconv.Itoa(item.Number)+"]"))
		default:
			parts = append(parts, strconv.Itoa(item.Number))
		}
	}
	parts = append(parts, next)
	return strings.Join(parts, " ")
}

// visiblePages keeps the first, last and a window around the active page.
// Gaps are returned as PageButton{Number: 0}.
func visiblePages(pages []PageButton) []PageButton {
	if len(pages) <= maxVisiblePages {
		return pages
	}
	active := 0
	for i, p := range pages {
		if p.Active {
			active = i
			break
		}
	}
	half := (maxVisiblePages - 4) / 2
	lo, hi := active-half, active+half
	if lo < 1 {
		hi += 1 - lo
		lo = 1
	}
	if hi > len(pages)-2 {
		lo -= hi - (len(pages) - 2)
		hi = len(pages) - 2
	}

	out := []PageButton{pages[0]}
	if lo > 1 {
		out = append(out, PageButton{})
	}
	out = append(out, pages[lo:hi+1]...)
	if hi < len(pages)-2 {
		out = append(out, PageButton{})
	}
	return append(out, pages[len(pages)-1])
}

// PageStatus renders "Page X of Y".
func PageStatus(page domain.Page) string {
	return fmt.Sprintf("Page %d of %d", page.CurrentPage, page.PageCount)
}

// Details renders the full details of a book.
func Details(b domain.Book, wishlisted bool, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	heart := heartOff
	if wishlisted {
		heart = heartStyle.Render(heartOn)
	}
	label := func(name string) string { return accentStyle.Render(name + ":") }

	lines := []string{
		titleStyle.Render(b.Title) + " " + heart,
		"",
		label("Author") + " " + b.DisplayAuthor(),
		label("Genre") + " " + b.DisplayGenre(),
		label("Cover") + " " + b.DisplayCover(),
		label("Downloads") + " " + strconv.Itoa(b.DownloadCount),
		label("ID") + " " + b.ID,
		"",
		label("Description"),
		lipgloss.NewStyle().Width(width).Render(b.DisplayDescription()),
	}
	return strings.Join(lines, "\n")
}

// ErrorPanel renders a boxed error message.
func ErrorPanel(msg string) string {
	return errorStyle.Render(msg)
}

// Notice renders a transient status message.
func Notice(msg string) string {
	if msg == "" {
		return ""
	}
	return heartStyle.Render(msg)
}

// WishlistState defines the inputs needed to render the wishlist view.
type WishlistState struct {
	Cards    []Card
	Failed   int
	Pending  int
	Selected int
	Width    int
}

// Wishlist renders the resolved wishlist entries.
func Wishlist(state WishlistState) string {
	if len(state.Cards) == 0 && state.Failed == 0 && state.Pending == 0 {
		return mutedStyle.Render(MsgWishlistEmpty)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Wishlist (%d)", len(state.Cards)+state.Failed+state.Pending)))
	b.WriteString("\n\n")
	if len(state.Cards) > 0 {
		b.WriteString(CardList(state.Cards, state.Selected, state.Width))
	}
	if state.Pending > 0 {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("loading %d more...", state.Pending)))
	}
	if state.Failed > 0 {
		b.WriteString("\n" + ErrorPanel(fmt.Sprintf("%s (%d)", MsgDetailsFailed, state.Failed)))
	}
	return b.String()
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode  bool
	DetailsMode bool
	Wishlist    bool
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	var help []string
	switch {
	case state.SearchMode:
		help = append(help, "type to filter", "Enter/ESC: done")
	case state.DetailsMode:
		help = append(help, "w: wishlist", "ESC: back")
	case state.Wishlist:
		help = append(help, "j/k: move", "w: remove", "Enter: details", "ESC: back")
	default:
		help = append(help,
			"j/k: move",
			"h/l: page",
			"/: search",
			"g/G: genre",
			"+/-: page size",
			"w: wishlist",
			"Enter: details",
			"W: view wishlist",
		)
	}
	help = append(help, "q: quit")
	return mutedStyle.Render(strings.Join(help, "  |  "))
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}

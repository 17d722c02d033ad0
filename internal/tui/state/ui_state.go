package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// screen identifies which view is active.
type screen int

const (
	screenBrowse screen = iota
	screenDetails
	screenWishlist
)

// UIState manages all UI-specific state for the TUI: terminal size,
// the active screen, cursors and the details viewport.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	screen     screen
	backScreen screen
	searchMode bool

	cursor         int
	wishlistCursor int
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-headerFooterLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the details viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetSize updates the terminal size and resizes the viewport.
func (u *UIState) SetSize(width, height int) {
	if width <= 0 {
		width = defaultViewportWidth
	}
	if height <= 0 {
		height = defaultViewportHeight
	}
	u.width = width
	u.height = height
	u.viewport.Width = width
	u.viewport.Height = max(1, height-headerFooterLines)
}

// Screen returns the active screen.
func (u *UIState) Screen() screen {
	return u.screen
}

// Open switches to s, remembering the current screen for Back.
func (u *UIState) Open(s screen) {
	if s == u.screen {
		return
	}
	u.backScreen = u.screen
	u.screen = s
}

// Back returns to the previous screen. Details go back to wherever they
// were opened from; every other screen goes back to browsing.
func (u *UIState) Back() {
	if u.screen == screenDetails {
		u.screen = u.backScreen
	} else {
		u.screen = screenBrowse
	}
	u.backScreen = screenBrowse
}

// IsSearchMode returns true while the search input has focus.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode enables or disables search mode.
func (u *UIState) SetSearchMode(enabled bool) {
	u.searchMode = enabled
}

// GetCursor returns the selected row on the current page.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor sets the cursor position.
func (u *UIState) SetCursor(pos int) {
	u.cursor = pos
}

// AdjustCursorBounds keeps the cursor within [0, listLength).
func (u *UIState) AdjustCursorBounds(listLength int) {
	u.cursor = clampCursor(u.cursor, listLength)
}

// GetWishlistCursor returns the selected row in the wishlist screen.
func (u *UIState) GetWishlistCursor() int {
	return u.wishlistCursor
}

// SetWishlistCursor sets the wishlist cursor clamped to listLength.
func (u *UIState) SetWishlistCursor(pos, listLength int) {
	u.wishlistCursor = clampCursor(pos, listLength)
}

func clampCursor(pos, listLength int) int {
	if listLength <= 0 || pos < 0 {
		return 0
	}
	if pos >= listLength {
		return listLength - 1
	}
	return pos
}

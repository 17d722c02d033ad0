package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUIStateDefaults(t *testing.T) {
	u := NewUIState()
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())
	assert.Equal(t, screenBrowse, u.Screen())
	assert.False(t, u.IsSearchMode())
}

func TestSetSizeFallsBackToDefaults(t *testing.T) {
	u := NewUIState()
	u.SetSize(0, -1)
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())

	u.SetSize(100, 3)
	assert.Equal(t, 1, u.GetViewport().Height)
}

func TestScreenNavigation(t *testing.T) {
	u := NewUIState()

	u.Open(screenWishlist)
	u.Open(screenDetails)
	u.Back()
	assert.Equal(t, screenWishlist, u.Screen())
	u.Back()
	assert.Equal(t, screenBrowse, u.Screen())

	u.Open(screenDetails)
	u.Back()
	assert.Equal(t, screenBrowse, u.Screen())
}

func TestCursorBounds(t *testing.T) {
	u := NewUIState()
	u.SetCursor(7)
	u.AdjustCursorBounds(5)
	assert.Equal(t, 4, u.GetCursor())
	u.AdjustCursorBounds(0)
	assert.Equal(t, 0, u.GetCursor())
	u.SetCursor(-2)
	u.AdjustCursorBounds(3)
	assert.Equal(t, 0, u.GetCursor())

	u.SetWishlistCursor(10, 2)
	assert.Equal(t, 1, u.GetWishlistCursor())
}

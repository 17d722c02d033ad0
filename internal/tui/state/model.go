// Package state provides the bubbletea model of the interactive browser.
package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/bookshelf/internal/browser"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/errors"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
)

const (
	headerFooterLines     = 5
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	statusClearDuration   = 5 * time.Second
)

// pageSizes are the page sizes cycled with + and -.
var pageSizes = []int{5, 10, 20, 50}

// Catalog loads books for the TUI.
type Catalog interface {
	FetchCollection(ctx context.Context) (domain.Collection, error)
	FetchBook(ctx context.Context, id string) (domain.Book, error)
}

// Options configures a Model.
type Options struct {
	Catalog  Catalog
	Wishlist *wishlist.Store
	PageSize int
	Metrics  *metrics.Metrics
	// Context bounds every request the model issues. Defaults to Background.
	Context context.Context
}

// detailsState is the book shown on the details screen.
type detailsState struct {
	id      string
	book    domain.Book
	loading bool
	err     error
}

// wishlistState is the resolved wishlist screen.
type wishlistState struct {
	generation int
	items      []wishlist.Item
	done       []bool
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ui           *UIState
	browser      *browser.Browser
	view         browser.View
	isMember     browser.Membership
	errorHandler *errors.TUIHandler

	catalog  Catalog
	wishlist *wishlist.Store
	ctx      context.Context

	spinner   spinner.Model
	search    textinput.Model
	paginator paginator.Model

	details        detailsState
	wishlistScreen wishlistState
}

// NewModel creates a new TUI model in the loading state.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}

	search := textinput.New()
	search.Placeholder = "search titles"
	search.Prompt = "/ "
	search.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = "●"
	pg.InactiveDot = "○"

	m := &Model{
		ui:           NewUIState(),
		errorHandler: errors.NewTUIHandler(nil),
		catalog:      opts.Catalog,
		wishlist:     opts.Wishlist,
		ctx:          ctx,
		spinner:      sp,
		search:       search,
		paginator:    pg,
	}
	m.browser = browser.New(opts.Wishlist,
		browser.WithPageSize(pageSize),
		browser.WithMetrics(opts.Metrics),
		browser.WithRenderer(browser.RendererFunc(m.render)),
	)
	m.view = m.browser.Snapshot()
	m.isMember = m.browser.IsMember
	m.syncPaginator()
	return m
}

// render receives every browser render pass.
func (m *Model) render(v browser.View, isMember browser.Membership) {
	if v.Page.CurrentPage != m.view.Page.CurrentPage || v.Page.PageSize != m.view.Page.PageSize {
		m.ui.SetCursor(0)
	}
	m.view = v
	m.isMember = isMember
	m.ui.AdjustCursorBounds(len(v.Page.Items))
	m.syncPaginator()
	if v.Notice != "" {
		m.errorHandler.Error(v.Notice)
	}
}

func (m *Model) syncPaginator() {
	m.paginator.PerPage = m.view.Page.PageSize
	m.paginator.TotalPages = m.view.Page.PageCount
	m.paginator.Page = m.view.Page.CurrentPage - 1
}

// Init starts the spinner and the collection load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCollection())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.refreshDetailsViewport()
		return m, nil
	case spinner.TickMsg:
		if !m.isLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case collectionLoadedMsg:
		if msg.err != nil {
			m.browser.LoadFailed(msg.err)
			return m, nil
		}
		m.browser.Loaded(msg.collection)
		return m, nil
	case bookLoadedMsg:
		return m, m.handleBookLoaded(msg)
	case wishlistItemMsg:
		m.handleWishlistItem(msg)
		return m, nil
	case statusClearMsg:
		m.errorHandler.ClearThrough(msg.through)
		return m, nil
	}
	return m, nil
}

// isLoading reports whether anything on screen waits on the network.
func (m *Model) isLoading() bool {
	switch m.ui.Screen() {
	case screenDetails:
		return m.details.loading
	case screenWishlist:
		return m.pendingWishlist() > 0
	default:
		return m.view.Status == browser.StatusLoading
	}
}

// selectedBook returns the book under the cursor on the current page.
func (m *Model) selectedBook() (domain.Book, bool) {
	items := m.view.Page.Items
	cursor := m.ui.GetCursor()
	if cursor < 0 || cursor >= len(items) {
		return domain.Book{}, false
	}
	return items[cursor], true
}

func (m *Model) showStatus(msg string, kind errors.MessageType) tea.Cmd {
	switch kind {
	case errors.MessageTypeError:
		m.errorHandler.Error(msg)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(msg)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(msg)
	default:
		m.errorHandler.Info(msg)
	}
	return statusClearAfter(statusClearDuration, m.errorHandler.LatestID())
}

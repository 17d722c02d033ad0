package domain

// DefaultPageSize is the number of books per page when none is configured.
const DefaultPageSize = 10

// Page is one visible slice of a filtered view plus its pagination metadata.
type Page struct {
	Items       []Book
	PageCount   int
	CurrentPage int
	PageSize    int
	Total       int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.CurrentPage < p.PageCount
}

// PageCount returns max(1, ceil(total/pageSize)). pageSize below 1 counts as 1.
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if total <= 0 {
		return 1
	}
	return (total-1)/pageSize + 1
}

// Paginate returns the page of view at currentPage, clamping currentPage into
// [1, PageCount]. The returned Items share view's backing array.
func Paginate(view []Book, pageSize, currentPage int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	count := PageCount(len(view), pageSize)
	current := clamp(currentPage, 1, count)

	start := (current - 1) * pageSize
	if start > len(view) {
		start = len(view)
	}
	end := len(view)
	if pageSize < end-start {
		end = start + pageSize
	}

	return Page{
		Items:       view[start:end:end],
		PageCount:   count,
		CurrentPage: current,
		PageSize:    pageSize,
		Total:       len(view),
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Pager holds the pagination state for one filtered view.
// The zero value is not usable; call NewPager.
type Pager struct {
	pageSize    int
	currentPage int
}

// NewPager creates a pager on page 1. pageSize below 1 is clamped to 1.
func NewPager(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{pageSize: pageSize, currentPage: 1}
}

// PageSize returns the number of books per page.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// CurrentPage returns the 1-based current page as last persisted.
func (p *Pager) CurrentPage() int {
	return p.currentPage
}

// Apply paginates view and keeps the clamped page as the current page.
func (p *Pager) Apply(view []Book) Page {
	page := Paginate(view, p.pageSize, p.currentPage)
	p.currentPage = page.CurrentPage
	return page
}

// SetPageSize changes the page size and goes back to page 1.
func (p *Pager) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	p.pageSize = size
	p.currentPage = 1
}

// Reset goes back to page 1.
func (p *Pager) Reset() {
	p.currentPage = 1
}

// Next advances one page. No-op on the last page.
func (p *Pager) Next(view []Book) Page {
	if p.currentPage < PageCount(len(view), p.pageSize) {
		p.currentPage++
	}
	return p.Apply(view)
}

// Prev goes back one page. No-op on the first page.
func (p *Pager) Prev(view []Book) Page {
	if p.currentPage > 1 {
		p.currentPage--
	}
	return p.Apply(view)
}

// GoTo jumps to page n, clamped into [1, PageCount].
func (p *Pager) GoTo(n int, view []Book) Page {
	p.currentPage = clamp(n, 1, PageCount(len(view), p.pageSize))
	return p.Apply(view)
}

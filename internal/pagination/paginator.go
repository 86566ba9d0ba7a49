package pagination

// DefaultPageSize is used when a non-positive page size is configured.
const DefaultPageSize = 10

// Paginator tracks the "show more" window of a list.
//
// The visible window is cumulative: page n shows the first n*pageSize items.
// The invariant 1 <= CurrentPage <= MaxPage holds after every call.
type Paginator struct {
	pageSize    int
	currentPage int
	maxPage     int
}

// New creates a Paginator on page 1 of an empty list.
func New(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, currentPage: 1, maxPage: 1}
}

// MaxPageFor returns max(1, ceil(count/pageSize)).
func MaxPageFor(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Reset starts over on page 1 for a list of count items.
func (p *Paginator) Reset(count int) {
	p.currentPage = 1
	p.maxPage = MaxPageFor(count, p.pageSize)
}

// Resize recomputes MaxPage for a new item count without leaving the current
// page, clamping it when the list shrank.
func (p *Paginator) Resize(count int) {
	p.maxPage = MaxPageFor(count, p.pageSize)
	if p.currentPage > p.maxPage {
		p.currentPage = p.maxPage
	}
}

// SetPageSize changes the page size and recomputes MaxPage for count items.
func (p *Paginator) SetPageSize(pageSize, count int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	p.pageSize = pageSize
	p.Resize(count)
}

// Advance moves to the next page. It is a no-op returning false on the last page.
func (p *Paginator) Advance() bool {
	if !p.CanAdvance() {
		return false
	}
	p.currentPage++
	return true
}

// CanAdvance reports whether the "show more" control is enabled.
func (p *Paginator) CanAdvance() bool {
	return p.currentPage < p.maxPage
}

// Window returns the number of leading items visible out of total.
func (p *Paginator) Window(total int) int {
	n := p.currentPage * p.pageSize
	if n > total {
		n = total
	}
	if n < 0 {
		return 0
	}
	return n
}

func (p *Paginator) CurrentPage() int { return p.currentPage }
func (p *Paginator) MaxPage() int     { return p.maxPage }
func (p *Paginator) PageSize() int    { return p.pageSize }

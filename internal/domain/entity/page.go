package entity

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps raw values into a usable page.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageResult carries one page of items plus totals.
type PageResult[T any] struct {
	Items      []T   `json:"docs"`
	TotalItems int64 `json:"totalDocs"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResult builds a PageResult for the given page.
func NewPageResult[T any](items []T, total int64, page Page) *PageResult[T] {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{
		Items:      items,
		TotalItems: total,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: totalPages,
	}
}

package entity

// Pagination selects a 1-based page of results.
type Pagination struct {
	Page     int
	PageSize int
}

const maxPageSize = 100

// NewPagination normalises page and size, falling back to defaultSize.
func NewPagination(page, size, defaultSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return Pagination{Page: page, PageSize: size}
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.PageSize
}

// PageResult is one page of items plus totals.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult builds a PageResult for items fetched with p out of total rows.
func NewPageResult[T any](items []T, p Pagination, total int64) *PageResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}

	return &PageResult[T]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

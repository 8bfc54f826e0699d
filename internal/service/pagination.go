package service

import "math"

const (
	// DefaultPerPage is used when the caller does not ask for a page size
	DefaultPerPage = 10
	// MaxPerPage caps the page size
	MaxPerPage = 100
	// MaxPage keeps (page-1)*perPage inside a 32-bit offset
	MaxPage = math.MaxInt32 / MaxPerPage
)

// PaginationMeta describes where a page sits in the full result set
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// PaginatedResponse wraps one page of results
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NormalizePagination clamps page to [1, MaxPage] and perPage to [1, MaxPerPage]
func NormalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Offset returns the row offset of a normalized page
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

// NewPaginatedResponse builds the page envelope. An empty result set still
// reports one page.
func NewPaginatedResponse[T any](data []T, total int64, page, perPage int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := int64(1)
	if total > 0 {
		totalPages = (total + int64(perPage) - 1) / int64(perPage)
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			HasNext:    int64(page) < totalPages,
			HasPrev:    page > 1,
		},
	}
}

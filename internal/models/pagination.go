package models

// Pagination describes one page of a listing.
// swagger:model Pagination
type Pagination struct {
	// 1-indexed page number
	// example: 1
	Page int `json:"page"`

	// Items per page
	// example: 20
	Limit int `json:"limit"`

	// Total matching items
	// example: 4
	Total int `json:"total"`

	// Total pages, ceil(total/limit)
	// example: 1
	Pages int `json:"pages"`
}

// NewPagination computes the pages count for a listing result.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

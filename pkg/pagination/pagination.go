package pagination

import "math"

// Pagination represents pagination parameters
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// PaginationParams represents input parameters for pagination
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// DefaultPagination returns default pagination values
func DefaultPagination() *PaginationParams {
	return &PaginationParams{
		Page:    1,
		PerPage: 15,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 15
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the query offset for the current page
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPagination builds response metadata from params and a total row count.
func NewPagination(params *PaginationParams, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(params.PerPage)))
	return &Pagination{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}

// PaginatedResult wraps a page of items with its pagination metadata.
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewPaginatedResult creates a paginated result
func NewPaginatedResult[T any](items []T, params *PaginationParams, total int64) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Items:      items,
		Pagination: NewPagination(params, total),
	}
}

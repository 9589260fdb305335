package pagination

import (
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

// DefaultMaxLimit bounds the work a single page may ask for; the app can
// lower or raise it via configuration.
const DefaultMaxLimit = 100

type Params struct {
	Page  int
	Limit int
}

// Normalize validates the window. Page and limit below 1 are clamped to 1;
// a limit above maxLimit is rejected so a caller cannot request unbounded
// pages.
func (p Params) Normalize(maxLimit int) (Params, error) {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		return Params{}, apperr.Validation("limit_too_large")
	}
	return p, nil
}

// Window returns the offset/limit pair for the store query.
func (p Params) Window() (offset, limit int) {
	return (p.Page - 1) * p.Limit, p.Limit
}

// Page is the envelope every listing returns.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPage builds the envelope from a fetched window and the total match
// count. totalPages is ceil(total/limit); an empty result set has zero pages.
func NewPage[T any](items []T, p Params, totalItems int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	limit := int64(p.Limit)
	totalPages := (totalItems + limit - 1) / limit
	page := int64(p.Page)
	return &Page[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && totalItems > 0,
	}
}

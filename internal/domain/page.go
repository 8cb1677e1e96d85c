package domain

// Room listings are paged. The default page is sized to show a typical floor
// of the catalog at once.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// PaginationParams selects one page of the room catalog. Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams resolves the optional page and limit query values.
// Missing or non-positive values take page 1 and DefaultPageLimit; a larger
// limit is clamped to MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of rooms that precede this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// HasNext reports whether rooms remain after this page out of total.
func (p PaginationParams) HasNext(total int64) bool {
	return int64(p.Offset()+p.Limit) < total
}

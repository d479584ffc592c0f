package model

// Page is the envelope returned by every filtered/paginated listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	PageIndex   int   `json:"page_index"`
	PageSize    int   `json:"page_size"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPage builds a Page, deriving total pages and the navigation flags from
// the totals.
func NewPage[T any](items []T, totalItems int64, pageIndex, pageSize int) Page[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		PageIndex:   pageIndex,
		PageSize:    pageSize,
		HasNext:     pageIndex+1 < totalPages,
		HasPrevious: pageIndex > 0,
	}
}

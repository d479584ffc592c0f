package service

import (
	"strings"
)

// DefaultPageSize is the fixed number of items per listing page.
const DefaultPageSize = 10

const (
	// SortAsc is the ascending sort direction.
	SortAsc = "asc"
	// SortDesc is the descending sort direction.
	SortDesc = "desc"
)

// PageQuery carries the raw, untrusted listing parameters as they arrive
// from the API layer.
type PageQuery struct {
	Filter    string
	PageIndex int
	Direction string
	SortBy    string
}

// ResolvedPageQuery is a PageQuery after normalization against an
// allow-list: the filter is whitespace-normalized, the direction is one of
// asc/desc, the sort field is a known store field, and the page index is a
// valid page for the given total.
type ResolvedPageQuery struct {
	Filter    string
	PageIndex int
	Direction string
	SortField string
	PageSize  int
}

// ResolveDirection normalizes the sort direction. Anything other than
// "asc"/"desc" (case-insensitive), including blank, silently falls back to
// ascending.
func ResolveDirection(direction string) string {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case SortAsc:
		return SortAsc
	case SortDesc:
		return SortDesc
	default:
		return SortAsc
	}
}

// ResolveSortKey maps a public sort key to its store field through a fixed
// allow-list. Unknown keys silently fall back to the default field.
func ResolveSortKey(sortBy string, allowed map[string]string, fallback string) string {
	if field, ok := allowed[sortBy]; ok {
		return field
	}
	return fallback
}

// ResolvePageIndex clamps a requested page index to a valid page for the
// given totals. Negative indexes and empty result sets resolve to page
// zero; indexes past the end resolve to the last page. Clamping, not
// erroring, is deliberate: a listing always returns a valid page.
func ResolvePageIndex(pageIndex int, totalItems int64, pageSize int) int {
	if pageIndex < 0 {
		return 0
	}
	if pageSize <= 0 {
		return 0
	}

	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		return 0
	}
	if pageIndex >= totalPages {
		return totalPages - 1
	}
	return pageIndex
}

// NormalizeFilter trims the filter text and collapses internal whitespace
// runs to single spaces.
func NormalizeFilter(filter string) string {
	return strings.Join(strings.Fields(filter), " ")
}

// resolvePageQuery normalizes everything except the page index, which needs
// the filtered total and is resolved by the caller after counting.
func resolvePageQuery(q PageQuery, allowedSortKeys map[string]string, defaultSortField string) ResolvedPageQuery {
	return ResolvedPageQuery{
		Filter:    NormalizeFilter(q.Filter),
		PageIndex: q.PageIndex,
		Direction: ResolveDirection(q.Direction),
		SortField: ResolveSortKey(q.SortBy, allowedSortKeys, defaultSortField),
		PageSize:  DefaultPageSize,
	}
}

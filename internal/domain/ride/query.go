package ride

import "strings"

// SortOrder is the direction applied to a sorted read query.
type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// OrderFromParam maps a caller-supplied order value to a SortOrder.
// Only "asc" (case-insensitive) selects ascending; every other value,
// including empty, falls back to fallback.
func OrderFromParam(order string, fallback SortOrder) SortOrder {
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		return OrderAsc
	}
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		return OrderDesc
	}
	return fallback
}

// ValidateDistanceRange checks the bounds of a distance filter before any
// storage call is made. Both bounds are inclusive.
func ValidateDistanceRange(min, max float64) error {
	if min < 0 || max < 0 {
		return ErrNegativeDistance
	}
	if min > max {
		return ErrMinAboveMax
	}
	return nil
}

// Criteria is the immutable filter shape shared by the keyword/status read
// queries. The composition rules are fixed:
//   - Keyword alone: case-insensitive substring match on pickup OR drop.
//   - Status alone: status equality.
//   - Both: status equality AND the keyword match.
//   - Neither: matches everything.
// Status is matched by raw equality: an unrecognized value simply matches no
// rides, it is not rejected.
type Criteria struct {
	Keyword string
	Status  string
}

// NewCriteria builds a Criteria from raw caller input.
func NewCriteria(keyword, status string) Criteria {
	return Criteria{
		Keyword: strings.TrimSpace(keyword),
		Status:  strings.TrimSpace(status),
	}
}

// Empty reports whether the criteria matches all rides.
func (c Criteria) Empty() bool {
	return c.Keyword == "" && c.Status == ""
}

// Advanced-search paging defaults and bounds. Page size is capped to keep a
// single request from dragging an unbounded result set through the store.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "createdAt"
)

// AdvancedQuery is the validated input of the composite search operation.
type AdvancedQuery struct {
	Criteria
	SortBy string
	Order  SortOrder
	Page   int // 0-indexed
	Size   int
}

// NewAdvancedQuery normalizes raw advanced-search parameters: missing sort
// field defaults to createdAt, missing order to ascending, page floors at 0,
// and size falls into [1, MaxPageSize] with DefaultPageSize as the fallback.
func NewAdvancedQuery(keyword, status, sortBy, order string, page, size int) AdvancedQuery {
	q := AdvancedQuery{
		Criteria: NewCriteria(keyword, status),
		SortBy:   strings.TrimSpace(sortBy),
		Order:    OrderFromParam(order, OrderAsc),
		Page:     page,
		Size:     size,
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	return q
}

// Offset returns the row offset implied by the page index and size.
func (q AdvancedQuery) Offset() int {
	return q.Page * q.Size
}

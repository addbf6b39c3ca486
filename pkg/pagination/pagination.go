package pagination

import "errors"

// ErrInvalidFirst is returned when the requested page size is zero or
// negative. Sizes are never silently clamped.
var ErrInvalidFirst = errors.New("page size must be a positive integer")

// Edge pairs a record with the cursor marking its sort position.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// PageInfo describes a page's position within the full result set.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Connection is the cursor-paginated result envelope.
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
	TotalCount int       `json:"totalCount"`
}

// FetchFunc returns up to limit records strictly after the given cursor
// position (or from the start when after is nil), in the collection's
// fixed sort order.
type FetchFunc[T any] func(after *Cursor, limit int) ([]T, error)

// CountFunc returns the number of records matching the active filters,
// ignoring pagination bounds.
type CountFunc func() (int, error)

// Paginate computes one page of a filtered, ordered collection.
//
// It over-fetches by one record to decide hasNextPage, trims the extra,
// and derives start/end cursors from the first and last returned records.
// hasPreviousPage is true exactly when a cursor was supplied: supplying a
// cursor is taken as proof a previous page exists, without an independent
// backward existence check.
func Paginate[T any](
	first int,
	after *Cursor,
	fetch FetchFunc[T],
	count CountFunc,
	cursorOf func(T) Cursor,
) (*Connection[T], error) {
	if first <= 0 {
		return nil, ErrInvalidFirst
	}

	items, err := fetch(after, first+1)
	if err != nil {
		return nil, err
	}

	hasNextPage := len(items) > first
	if hasNextPage {
		items = items[:first]
	}

	edges := make([]Edge[T], 0, len(items))
	for _, item := range items {
		edges = append(edges, Edge[T]{
			Node:   item,
			Cursor: cursorOf(item).Encode(),
		})
	}

	pageInfo := PageInfo{
		HasNextPage:     hasNextPage,
		HasPreviousPage: after != nil,
	}
	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		pageInfo.StartCursor = &start
		pageInfo.EndCursor = &end
	}

	totalCount, err := count()
	if err != nil {
		return nil, err
	}

	return &Connection[T]{
		Edges:      edges,
		PageInfo:   pageInfo,
		TotalCount: totalCount,
	}, nil
}

package storage

// PageRequest is the pagination input for every paged query.
// Construct it with NewPageRequest; out-of-range values are rejected,
// never clamped, so callers cannot silently read the wrong page.
type PageRequest struct {
	Number int
	Size   int
}

func NewPageRequest(number, size int) (PageRequest, error) {
	if number < 1 || size < 1 {
		return PageRequest{}, ErrInvalidPage
	}
	return PageRequest{Number: number, Size: size}, nil
}

// Offset returns the number of rows to skip: (page-1) * pageSize.
func (p PageRequest) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.Size)
}

// Limit returns the number of rows to take.
func (p PageRequest) Limit() uint64 {
	return uint64(p.Size)
}

// PageResult is one page of items plus the pagination metadata derived from
// the total root-entity count. All derived fields are filled by
// NewPageResult so a marshalled result always satisfies the invariants:
// totalPages = ceil(totalCount/pageSize), hasPreviousPage ⇔ page > 1,
// hasNextPage ⇔ page < totalPages.
type PageResult[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
	FirstItemIndex  int  `json:"firstItemIndex"`
	LastItemIndex   int  `json:"lastItemIndex"`
}

func NewPageResult[T any](items []T, page PageRequest, totalCount int) PageResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := (totalCount + page.Size - 1) / page.Size

	last := page.Number * page.Size
	if last > totalCount {
		last = totalCount
	}

	return PageResult[T]{
		Items:           items,
		Page:            page.Number,
		PageSize:        page.Size,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasPreviousPage: page.Number > 1,
		HasNextPage:     page.Number < totalPages,
		FirstItemIndex:  (page.Number-1)*page.Size + 1,
		LastItemIndex:   last,
	}
}

// MapPage converts the items of a page while keeping the metadata intact.
// Used by services to turn a page of entities into a page of view models.
func MapPage[T, U any](p PageResult[T], fn func(T) U) PageResult[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}

	return PageResult[U]{
		Items:           items,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalCount:      p.TotalCount,
		TotalPages:      p.TotalPages,
		HasPreviousPage: p.HasPreviousPage,
		HasNextPage:     p.HasNextPage,
		FirstItemIndex:  p.FirstItemIndex,
		LastItemIndex:   p.LastItemIndex,
	}
}

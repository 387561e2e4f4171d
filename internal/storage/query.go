package storage

import (
	sq "github.com/Masterminds/squirrel"
)

// compose builds the executable page query and its matching count query from
// a base table, an optional predicate and an ordering. It is deterministic:
// the same inputs always produce the same SQL. Pagination is applied last,
// strictly as OFFSET (page-1)*size LIMIT size, so skip/take always operate
// on the fully filtered, fully ordered root set. The count query shares the
// predicate but carries no ordering or limits: the total must be the root
// row count, nothing else.
func compose(table string, columns []string, predicate Predicate, order OrderBy, page PageRequest) (items, count sq.SelectBuilder) {
	items = sq.
		Select(columns...).
		From(table).
		PlaceholderFormat(sq.Dollar)

	count = sq.
		Select("count(*)").
		From(table).
		PlaceholderFormat(sq.Dollar)

	if predicate != nil {
		items = items.Where(predicate)
		count = count.Where(predicate)
	}

	items = items.
		OrderBy(order.clause()).
		Offset(page.Offset()).
		Limit(page.Limit())

	return items, count
}

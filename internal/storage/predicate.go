package storage

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Predicate is a first-class filter value built by the caller and applied by
// the store before pagination. It is a plain SQL condition, never a query:
// composition (ordering, limits, includes) stays inside the store.
type Predicate = sq.Sqlizer

// OrderBy names the sort column and direction for ordered queries.
type OrderBy struct {
	Column    string
	Ascending bool
}

func Asc(column string) OrderBy {
	return OrderBy{Column: column, Ascending: true}
}

func Desc(column string) OrderBy {
	return OrderBy{Column: column, Ascending: false}
}

func (o OrderBy) clause() string {
	if o.Ascending {
		return o.Column + " ASC"
	}
	return o.Column + " DESC"
}

// Eq matches rows where column equals value. A slice value becomes an IN
// condition.
func Eq(column string, value any) Predicate {
	return sq.Eq{column: value}
}

// Or combines predicates disjunctively.
func Or(predicates ...Predicate) Predicate {
	or := make(sq.Or, len(predicates))
	copy(or, predicates)
	return or
}

// ContainsFold matches rows where column contains substr, case-insensitively.
// User input is escaped so % and _ are matched literally.
func ContainsFold(column, substr string) Predicate {
	return sq.ILike{column: "%" + escapeWildcards(substr) + "%"}
}

// escapeWildcards prevents user input from injecting ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

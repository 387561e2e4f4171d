package storage

import "errors"

var (
	// ErrNotFound is returned by Update and Delete when no row matches the
	// identity. Read operations report absence as (nil, nil) instead.
	ErrNotFound = errors.New("entity not found")

	// ErrMultipleRows signals that a predicate expected to match at most one
	// row matched several. This is a uniqueness invariant violation upstream,
	// not a user error.
	ErrMultipleRows = errors.New("predicate matched more than one row")

	// ErrReferenced is returned when a write is blocked by a foreign key
	// constraint (restrict-on-delete dependents, or a dangling reference).
	ErrReferenced = errors.New("entity is referenced by dependent rows")

	// ErrInvalidPage rejects out-of-range pagination input.
	ErrInvalidPage = errors.New("page number and page size must be at least 1")
)

package model

import "errors"

var (
	// Not-found conditions, recoverable, surfaced as 404 at the boundary.
	ErrAuthorNotFound = errors.New("author not found")
	ErrGenreNotFound  = errors.New("genre not found")
	ErrBookNotFound   = errors.New("book not found")

	// ErrIDMismatch is a caller-supplied inconsistency: the path id and the
	// body id of an update disagree. Raised before any persistence call.
	ErrIDMismatch = errors.New("path id and body id do not match")

	// Referential conflicts: delete blocked by dependent books.
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
	ErrGenreHasBooks  = errors.New("cannot delete genre with linked books")

	// ErrSearchTermMissing rejects empty search input.
	ErrSearchTermMissing = errors.New("search term must not be empty")
)

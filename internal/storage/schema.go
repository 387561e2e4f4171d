package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the store needs. It also matches
// pgx.Tx, so a store can run inside a transaction when a caller wants one.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Include names a relation to eager-load alongside the root rows. Relations
// are opt-in on every read; nothing is ever fetched implicitly.
type Include string

// Schema describes one entity type to the generic store: its table, the
// selectable columns, identity access, the mutable-column arguments for
// insert/update, and the named relations that can be eager-loaded.
type Schema[T any] struct {
	Table   string
	Columns []string

	ID    func(*T) uuid.UUID
	SetID func(*T, uuid.UUID)

	// Args returns the mutable column values of the entity. Identity and
	// timestamp columns are managed by the store itself.
	Args func(*T) map[string]any

	Relations map[Include]Relation[T]
}

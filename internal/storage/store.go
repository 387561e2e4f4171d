package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// EntityStore is the single abstraction through which all reads and writes
// to one entity collection happen. Predicates, orderings and includes are
// supplied by the caller; the store composes them once and applies
// pagination last.
type EntityStore[T any] interface {
	// GetAll returns all rows, most recently created first, paginated.
	GetAll(ctx context.Context, page PageRequest, includes ...Include) (PageResult[T], error)

	// GetByID returns one row by identity, or (nil, nil) when absent.
	// Absence is not an error at this layer.
	GetByID(ctx context.Context, id uuid.UUID, includes ...Include) (*T, error)

	// Find applies a predicate before paginating.
	Find(ctx context.Context, page PageRequest, predicate Predicate, includes ...Include) (PageResult[T], error)

	// SingleOrDefault returns the row matching the predicate, (nil, nil)
	// when none matches, or ErrMultipleRows when more than one does.
	SingleOrDefault(ctx context.Context, predicate Predicate, includes ...Include) (*T, error)

	// Add inserts the entity, assigning identity and creation timestamp,
	// and returns the persisted row.
	Add(ctx context.Context, entity *T) (*T, error)

	// Update replaces all mutable fields by identity and bumps the
	// last-modified timestamp. A missing row surfaces ErrNotFound, matching
	// Delete's behavior.
	Update(ctx context.Context, entity *T) error

	// Delete removes the row by identity. A missing row surfaces
	// ErrNotFound; a row with restrict-on-delete dependents, ErrReferenced.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByFilter is Find with the argument order the search endpoints use.
	GetByFilter(ctx context.Context, predicate Predicate, page PageRequest, includes ...Include) (PageResult[T], error)

	// GetOrdered generalizes ordering beyond the default recency order.
	GetOrdered(ctx context.Context, order OrderBy, page PageRequest, includes ...Include) (PageResult[T], error)

	GetFilteredAndOrdered(ctx context.Context, predicate Predicate, order OrderBy, page PageRequest, includes ...Include) (PageResult[T], error)
}

// PgStore implements EntityStore over a pgx pool with queries composed by
// squirrel. One generic implementation serves every entity; per-entity
// behavior comes entirely from the Schema.
type PgStore[T any] struct {
	db     Querier
	schema Schema[T]
}

func NewPgStore[T any](db Querier, schema Schema[T]) *PgStore[T] {
	return &PgStore[T]{
		db:     db,
		schema: schema,
	}
}

func (s *PgStore[T]) defaultOrder() OrderBy {
	return Desc("created_at")
}

func (s *PgStore[T]) GetAll(ctx context.Context, page PageRequest, includes ...Include) (PageResult[T], error) {
	return s.paged(ctx, nil, s.defaultOrder(), page, includes)
}

func (s *PgStore[T]) Find(ctx context.Context, page PageRequest, predicate Predicate, includes ...Include) (PageResult[T], error) {
	return s.paged(ctx, predicate, s.defaultOrder(), page, includes)
}

func (s *PgStore[T]) GetByFilter(ctx context.Context, predicate Predicate, page PageRequest, includes ...Include) (PageResult[T], error) {
	return s.paged(ctx, predicate, s.defaultOrder(), page, includes)
}

func (s *PgStore[T]) GetOrdered(ctx context.Context, order OrderBy, page PageRequest, includes ...Include) (PageResult[T], error) {
	return s.paged(ctx, nil, order, page, includes)
}

func (s *PgStore[T]) GetFilteredAndOrdered(ctx context.Context, predicate Predicate, order OrderBy, page PageRequest, includes ...Include) (PageResult[T], error) {
	return s.paged(ctx, predicate, order, page, includes)
}

// paged runs the two-phase fetch: count and page the root rows first, then
// load each requested relation for exactly the page's identities.
func (s *PgStore[T]) paged(ctx context.Context, predicate Predicate, order OrderBy, page PageRequest, includes []Include) (PageResult[T], error) {
	var zero PageResult[T]

	itemsQ, countQ := compose(s.schema.Table, s.schema.Columns, predicate, order, page)

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build %s count query: %w", s.schema.Table, err)
	}

	var total int
	if err := s.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return zero, fmt.Errorf("count %s: %w", s.schema.Table, err)
	}

	itemsSQL, itemsArgs, err := itemsQ.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build %s page query: %w", s.schema.Table, err)
	}

	rows, err := s.db.Query(ctx, itemsSQL, itemsArgs...)
	if err != nil {
		return zero, fmt.Errorf("query %s: %w", s.schema.Table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, fmt.Errorf("scan %s: %w", s.schema.Table, err)
	}

	if err := s.loadRelations(ctx, items, includes); err != nil {
		return zero, err
	}

	return NewPageResult(items, page, total), nil
}

func (s *PgStore[T]) GetByID(ctx context.Context, id uuid.UUID, includes ...Include) (*T, error) {
	return s.single(ctx, sq.Eq{"id": id}, false, includes)
}

func (s *PgStore[T]) SingleOrDefault(ctx context.Context, predicate Predicate, includes ...Include) (*T, error) {
	return s.single(ctx, predicate, true, includes)
}

func (s *PgStore[T]) single(ctx context.Context, predicate Predicate, exclusive bool, includes []Include) (*T, error) {
	// LIMIT 2 lets the exclusive path detect a second match without
	// scanning the whole table.
	query, args, err := sq.
		Select(s.schema.Columns...).
		From(s.schema.Table).
		Where(predicate).
		Limit(2).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", s.schema.Table, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.schema.Table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.schema.Table, err)
	}

	switch {
	case len(items) == 0:
		return nil, nil
	case len(items) > 1 && exclusive:
		return nil, fmt.Errorf("%s: %w", s.schema.Table, ErrMultipleRows)
	}

	if err := s.loadRelations(ctx, items[:1], includes); err != nil {
		return nil, err
	}

	return &items[0], nil
}

func (s *PgStore[T]) Add(ctx context.Context, entity *T) (*T, error) {
	if s.schema.ID(entity) == uuid.Nil {
		s.schema.SetID(entity, uuid.New())
	}

	values := s.schema.Args(entity)
	values["id"] = s.schema.ID(entity)
	values["created_at"] = sq.Expr("now()")
	values["last_modified"] = sq.Expr("now()")

	query, args, err := sq.
		Insert(s.schema.Table).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(s.schema.Columns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", s.schema.Table, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", s.schema.Table, translatePgErr(err))
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", s.schema.Table, translatePgErr(err))
	}

	return &created, nil
}

func (s *PgStore[T]) Update(ctx context.Context, entity *T) error {
	query, args, err := sq.
		Update(s.schema.Table).
		SetMap(s.schema.Args(entity)).
		Set("last_modified", sq.Expr("now()")).
		Where(sq.Eq{"id": s.schema.ID(entity)}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", s.schema.Table, err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", s.schema.Table, translatePgErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %s: %w", s.schema.Table, ErrNotFound)
	}

	return nil
}

func (s *PgStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.
		Delete(s.schema.Table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", s.schema.Table, err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.schema.Table, translatePgErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete %s: %w", s.schema.Table, ErrNotFound)
	}

	return nil
}

func (s *PgStore[T]) loadRelations(ctx context.Context, items []T, includes []Include) error {
	if len(includes) == 0 || len(items) == 0 {
		return nil
	}

	parents := make([]*T, len(items))
	for i := range items {
		parents[i] = &items[i]
	}

	for _, include := range includes {
		relation, ok := s.schema.Relations[include]
		if !ok {
			return fmt.Errorf("%s has no relation %q", s.schema.Table, include)
		}
		if err := relation(ctx, s.db, parents); err != nil {
			return fmt.Errorf("load %s.%s: %w", s.schema.Table, include, err)
		}
	}

	return nil
}

// translatePgErr maps foreign key violations onto ErrReferenced so callers
// can distinguish referential conflicts without importing pgconn.
func translatePgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w (%s)", ErrReferenced, pgErr.ConstraintName)
	}
	return err
}

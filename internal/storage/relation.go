package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

// Relation loads one named relation for a page of parent rows. Relations use
// a split-query strategy: the root page is fetched first, then each relation
// runs as its own query scoped to exactly the page's identities, and the
// results are stitched back by identity. Joining one-to-many relations into
// the root query would multiply rows and corrupt pagination counts, so the
// root count always stays a pure root-entity count.
type Relation[T any] func(ctx context.Context, db Querier, parents []*T) error

// HasMany loads the child rows whose foreignKey column references a parent
// on the page, then assigns each parent its own children. The child schema
// is passed as a constructor so mutually related schemas can reference each
// other without recursing at construction time.
func HasMany[P, C any](
	child func() Schema[C],
	foreignKey string,
	parentID func(*P) uuid.UUID,
	childFK func(C) uuid.UUID,
	assign func(*P, []C),
) Relation[P] {
	return func(ctx context.Context, db Querier, parents []*P) error {
		if len(parents) == 0 {
			return nil
		}

		ids := lo.Map(parents, func(p *P, _ int) uuid.UUID { return parentID(p) })

		children, err := fetchRelated(ctx, db, child(), sq.Eq{foreignKey: ids})
		if err != nil {
			return err
		}

		bindMany(parents, children, parentID, childFK, assign)
		return nil
	}
}

// HasOne loads the rows a page of parents reference through foreignKey
// (e.g. each book's author) and assigns one child per parent.
func HasOne[P, C any](
	child func() Schema[C],
	parentFK func(*P) uuid.UUID,
	assign func(*P, *C),
) Relation[P] {
	return func(ctx context.Context, db Querier, parents []*P) error {
		if len(parents) == 0 {
			return nil
		}

		schema := child()
		ids := lo.Uniq(lo.Map(parents, func(p *P, _ int) uuid.UUID { return parentFK(p) }))

		children, err := fetchRelated(ctx, db, schema, sq.Eq{"id": ids})
		if err != nil {
			return err
		}

		bindOne(parents, children, parentFK, schema.ID, assign)
		return nil
	}
}

func fetchRelated[C any](ctx context.Context, db Querier, schema Schema[C], where sq.Sqlizer) ([]C, error) {
	query, args, err := sq.
		Select(schema.Columns...).
		From(schema.Table).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s relation query: %w", schema.Table, err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s relation: %w", schema.Table, err)
	}

	children, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[C])
	if err != nil {
		return nil, fmt.Errorf("scan %s relation: %w", schema.Table, err)
	}

	return children, nil
}

// bindMany stitches children back onto their parents by identity. Every
// child appears under exactly one parent, so an author with four books ends
// up with four distinct books regardless of page shape.
func bindMany[P, C any](
	parents []*P,
	children []C,
	parentID func(*P) uuid.UUID,
	childFK func(C) uuid.UUID,
	assign func(*P, []C),
) {
	grouped := lo.GroupBy(children, func(c C) uuid.UUID { return childFK(c) })

	for _, parent := range parents {
		assign(parent, grouped[parentID(parent)])
	}
}

func bindOne[P, C any](
	parents []*P,
	children []C,
	parentFK func(*P) uuid.UUID,
	childID func(*C) uuid.UUID,
	assign func(*P, *C),
) {
	byID := make(map[uuid.UUID]C, len(children))
	for _, c := range children {
		byID[childID(&c)] = c
	}

	for _, parent := range parents {
		if c, ok := byID[parentFK(parent)]; ok {
			child := c
			assign(parent, &child)
		}
	}
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// Genre is an aggregate root owning a collection of Books.
type Genre struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`

	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	LastModified time.Time `json:"lastModified" db:"last_modified"`

	Books []Book `json:"-" db:"-"`
}

// GenreSchema wires Genre into the generic store.
func GenreSchema() storage.Schema[Genre] {
	return storage.Schema[Genre]{
		Table: "genres",
		Columns: []string{
			"id", "name", "description", "created_at", "last_modified",
		},
		ID:    func(g *Genre) uuid.UUID { return g.ID },
		SetID: func(g *Genre, id uuid.UUID) { g.ID = id },
		Args: func(g *Genre) map[string]any {
			return map[string]any{
				"name":        g.Name,
				"description": g.Description,
			}
		},
		Relations: map[storage.Include]storage.Relation[Genre]{
			IncludeBooks: storage.HasMany(
				BookSchema,
				"genre_id",
				func(g *Genre) uuid.UUID { return g.ID },
				func(b Book) uuid.UUID { return b.GenreID },
				func(g *Genre, books []Book) { g.Books = books },
			),
		},
	}
}

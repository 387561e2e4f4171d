package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// Author is an aggregate root owning a collection of Books. The Books slice
// is only populated when a read explicitly asks for IncludeBooks; it never
// triggers a fetch on its own.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	DateOfBirth *time.Time `json:"dateOfBirth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"dateOfDeath" db:"date_of_death"`
	Biography   *string    `json:"biography" db:"biography"`

	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	LastModified time.Time `json:"lastModified" db:"last_modified"`

	Books []Book `json:"-" db:"-"`
}

// FullName renders "First Last" for denormalized display fields.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// AuthorSchema wires Author into the generic store.
func AuthorSchema() storage.Schema[Author] {
	return storage.Schema[Author]{
		Table: "authors",
		Columns: []string{
			"id", "first_name", "last_name", "date_of_birth", "date_of_death",
			"biography", "created_at", "last_modified",
		},
		ID:    func(a *Author) uuid.UUID { return a.ID },
		SetID: func(a *Author, id uuid.UUID) { a.ID = id },
		Args: func(a *Author) map[string]any {
			return map[string]any{
				"first_name":    a.FirstName,
				"last_name":     a.LastName,
				"date_of_birth": a.DateOfBirth,
				"date_of_death": a.DateOfDeath,
				"biography":     a.Biography,
			}
		},
		Relations: map[storage.Include]storage.Relation[Author]{
			IncludeBooks: storage.HasMany(
				BookSchema,
				"author_id",
				func(a *Author) uuid.UUID { return a.ID },
				func(b Book) uuid.UUID { return b.AuthorID },
				func(a *Author, books []Book) { a.Books = books },
			),
		},
	}
}

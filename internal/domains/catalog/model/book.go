package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// Relation names accepted by the stores' includes parameter.
const (
	IncludeBooks  storage.Include = "books"
	IncludeAuthor storage.Include = "author"
	IncludeGenre  storage.Include = "genre"
)

// Book references exactly one Author and one Genre. Both references are
// mandatory and restrict-on-delete: a book cannot outlive either side, and
// neither side can be deleted while a book references it. The Author and
// Genre pointers are filled only by an explicit include.
type Book struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Subtitle      *string    `json:"subtitle" db:"subtitle"`
	Description   *string    `json:"description" db:"description"`
	PublishedDate *time.Time `json:"publishedDate" db:"published_date"`
	ISBN          *string    `json:"isbn" db:"isbn"`
	PageCount     *int       `json:"pageCount" db:"page_count"`
	Publisher     *string    `json:"publisher" db:"publisher"`

	AuthorID uuid.UUID `json:"authorId" db:"author_id"`
	GenreID  uuid.UUID `json:"genreId" db:"genre_id"`

	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	LastModified time.Time `json:"lastModified" db:"last_modified"`

	Author *Author `json:"-" db:"-"`
	Genre  *Genre  `json:"-" db:"-"`
}

// BookSchema wires Book into the generic store.
func BookSchema() storage.Schema[Book] {
	return storage.Schema[Book]{
		Table: "books",
		Columns: []string{
			"id", "title", "subtitle", "description", "published_date", "isbn",
			"page_count", "publisher", "author_id", "genre_id",
			"created_at", "last_modified",
		},
		ID:    func(b *Book) uuid.UUID { return b.ID },
		SetID: func(b *Book, id uuid.UUID) { b.ID = id },
		Args: func(b *Book) map[string]any {
			return map[string]any{
				"title":          b.Title,
				"subtitle":       b.Subtitle,
				"description":    b.Description,
				"published_date": b.PublishedDate,
				"isbn":           b.ISBN,
				"page_count":     b.PageCount,
				"publisher":      b.Publisher,
				"author_id":      b.AuthorID,
				"genre_id":       b.GenreID,
			}
		},
		Relations: map[storage.Include]storage.Relation[Book]{
			IncludeAuthor: storage.HasOne(
				AuthorSchema,
				func(b *Book) uuid.UUID { return b.AuthorID },
				func(b *Book, a *Author) { b.Author = a },
			),
			IncludeGenre: storage.HasOne(
				GenreSchema,
				func(b *Book) uuid.UUID { return b.GenreID },
				func(b *Book, g *Genre) { b.Genre = g },
			),
		},
	}
}

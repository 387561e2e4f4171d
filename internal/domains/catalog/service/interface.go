package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// AuthorService exposes the author catalog operations to the HTTP layer.
// Reads return view models; validation failures, not-found and referential
// conflicts surface as typed errors translated by the handlers.
type AuthorService interface {
	GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error)
	GetAllWithBooks(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorViewModel, error)
	GetByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.AuthorViewModel, error)
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.AuthorViewModel, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error)
}

type GenreService interface {
	GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error)
	GetAllWithBooks(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error)
	GetByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error)
	Create(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateGenreRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error)
}

// BookService reads always eager-load author and genre so the flattened
// AuthorName/GenreName display fields can be filled without extra fetches.
type BookService interface {
	GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookViewModel, error)
	GetByAuthorID(ctx context.Context, authorID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	GetByGenreID(ctx context.Context, genreID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	Create(ctx context.Context, req model.CreateBookRequest) (*model.BookViewModel, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
}

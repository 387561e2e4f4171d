package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/storage"
)

type bookService struct {
	books   storage.EntityStore[model.Book]
	authors storage.EntityStore[model.Author]
	genres  storage.EntityStore[model.Genre]
}

func NewBookService(
	books storage.EntityStore[model.Book],
	authors storage.EntityStore[model.Author],
	genres storage.EntityStore[model.Genre],
) BookService {
	return &bookService{
		books:   books,
		authors: authors,
		genres:  genres,
	}
}

// bookIncludes are loaded on every read so view models can carry the
// flattened author and genre names.
var bookIncludes = []storage.Include{model.IncludeAuthor, model.IncludeGenre}

func (s *bookService) GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	result, err := s.books.GetAll(ctx, page, bookIncludes...)
	if err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}
	return storage.MapPage(result, model.Book.ToViewModel), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.BookViewModel, error) {
	book, err := s.books.GetByID(ctx, id, bookIncludes...)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
	}

	vm := book.ToViewModel()
	return &vm, nil
}

func (s *bookService) GetByAuthorID(ctx context.Context, authorID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if err := s.requireAuthor(ctx, authorID); err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}

	result, err := s.books.Find(ctx, page, storage.Eq("author_id", authorID), bookIncludes...)
	if err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}
	return storage.MapPage(result, model.Book.ToViewModel), nil
}

func (s *bookService) GetByGenreID(ctx context.Context, genreID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if err := s.requireGenre(ctx, genreID); err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}

	result, err := s.books.Find(ctx, page, storage.Eq("genre_id", genreID), bookIncludes...)
	if err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}
	return storage.MapPage(result, model.Book.ToViewModel), nil
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookViewModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}
	if err := s.requireGenre(ctx, req.GenreID); err != nil {
		return nil, err
	}

	created, err := s.books.Add(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	// Re-read with relations so the response carries the display names.
	return s.GetByID(ctx, created.ID)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error {
	// The id check runs before any persistence call.
	if id != req.ID {
		return fmt.Errorf("%w: path %s, body %s", model.ErrIDMismatch, id, req.ID)
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
	}

	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.requireAuthor(ctx, req.AuthorID); err != nil {
		return err
	}
	if err := s.requireGenre(ctx, req.GenreID); err != nil {
		return err
	}

	req.Apply(book)

	if err := s.books.Update(ctx, book); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
		}
		return err
	}

	return nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.books.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", model.ErrBookNotFound, id)
	}
	return err
}

func (s *bookService) SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.PageResult[model.BookViewModel]{}, model.ErrSearchTermMissing
	}

	result, err := s.books.GetByFilter(ctx, storage.ContainsFold("title", name), page, bookIncludes...)
	if err != nil {
		return storage.PageResult[model.BookViewModel]{}, err
	}
	return storage.MapPage(result, model.Book.ToViewModel), nil
}

func (s *bookService) requireAuthor(ctx context.Context, id uuid.UUID) error {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("%w: %s", model.ErrAuthorNotFound, id)
	}
	return nil
}

func (s *bookService) requireGenre(ctx context.Context, id uuid.UUID) error {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if genre == nil {
		return fmt.Errorf("%w: %s", model.ErrGenreNotFound, id)
	}
	return nil
}

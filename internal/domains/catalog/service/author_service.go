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

type authorService struct {
	authors storage.EntityStore[model.Author]
}

func NewAuthorService(authors storage.EntityStore[model.Author]) AuthorService {
	return &authorService{authors: authors}
}

func (s *authorService) GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error) {
	result, err := s.authors.GetAll(ctx, page)
	if err != nil {
		return storage.PageResult[model.AuthorViewModel]{}, err
	}
	return storage.MapPage(result, model.Author.ToViewModel), nil
}

func (s *authorService) GetAllWithBooks(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error) {
	result, err := s.authors.GetAll(ctx, page, model.IncludeBooks)
	if err != nil {
		return storage.PageResult[model.AuthorViewModel]{}, err
	}
	return storage.MapPage(result, model.Author.ToViewModel), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorViewModel, error) {
	return s.getOne(ctx, id)
}

func (s *authorService) GetByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.AuthorViewModel, error) {
	return s.getOne(ctx, id, model.IncludeBooks)
}

func (s *authorService) getOne(ctx context.Context, id uuid.UUID, includes ...storage.Include) (*model.AuthorViewModel, error) {
	author, err := s.authors.GetByID(ctx, id, includes...)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrAuthorNotFound, id)
	}

	vm := author.ToViewModel()
	return &vm, nil
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.AuthorViewModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.authors.Add(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	vm := created.ToViewModel()
	return &vm, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) error {
	// The id check runs before any persistence call.
	if id != req.ID {
		return fmt.Errorf("%w: path %s, body %s", model.ErrIDMismatch, id, req.ID)
	}

	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("%w: %s", model.ErrAuthorNotFound, id)
	}

	if err := req.Validate(); err != nil {
		return err
	}

	req.Apply(author)

	if err := s.authors.Update(ctx, author); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", model.ErrAuthorNotFound, id)
		}
		return err
	}

	return nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.authors.Delete(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", model.ErrAuthorNotFound, id)
	case errors.Is(err, storage.ErrReferenced):
		return fmt.Errorf("%w: %s", model.ErrAuthorHasBooks, id)
	}
	return err
}

func (s *authorService) SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.AuthorViewModel], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.PageResult[model.AuthorViewModel]{}, model.ErrSearchTermMissing
	}

	// Case-insensitive substring match over either name part; the store
	// applies the predicate before paginating.
	predicate := storage.Or(
		storage.ContainsFold("first_name", name),
		storage.ContainsFold("last_name", name),
	)

	result, err := s.authors.GetByFilter(ctx, predicate, page)
	if err != nil {
		return storage.PageResult[model.AuthorViewModel]{}, err
	}
	return storage.MapPage(result, model.Author.ToViewModel), nil
}

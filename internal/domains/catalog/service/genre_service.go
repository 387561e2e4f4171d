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

type genreService struct {
	genres storage.EntityStore[model.Genre]
}

func NewGenreService(genres storage.EntityStore[model.Genre]) GenreService {
	return &genreService{genres: genres}
}

func (s *genreService) GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	result, err := s.genres.GetAll(ctx, page)
	if err != nil {
		return storage.PageResult[model.GenreViewModel]{}, err
	}
	return storage.MapPage(result, model.Genre.ToViewModel), nil
}

func (s *genreService) GetAllWithBooks(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	result, err := s.genres.GetAll(ctx, page, model.IncludeBooks)
	if err != nil {
		return storage.PageResult[model.GenreViewModel]{}, err
	}
	return storage.MapPage(result, model.Genre.ToViewModel), nil
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error) {
	return s.getOne(ctx, id)
}

func (s *genreService) GetByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error) {
	return s.getOne(ctx, id, model.IncludeBooks)
}

func (s *genreService) getOne(ctx context.Context, id uuid.UUID, includes ...storage.Include) (*model.GenreViewModel, error) {
	genre, err := s.genres.GetByID(ctx, id, includes...)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrGenreNotFound, id)
	}

	vm := genre.ToViewModel()
	return &vm, nil
}

func (s *genreService) Create(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.genres.Add(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	vm := created.ToViewModel()
	return &vm, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, req model.UpdateGenreRequest) error {
	if id != req.ID {
		return fmt.Errorf("%w: path %s, body %s", model.ErrIDMismatch, id, req.ID)
	}

	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if genre == nil {
		return fmt.Errorf("%w: %s", model.ErrGenreNotFound, id)
	}

	if err := req.Validate(); err != nil {
		return err
	}

	req.Apply(genre)

	if err := s.genres.Update(ctx, genre); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", model.ErrGenreNotFound, id)
		}
		return err
	}

	return nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.genres.Delete(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", model.ErrGenreNotFound, id)
	case errors.Is(err, storage.ErrReferenced):
		return fmt.Errorf("%w: %s", model.ErrGenreHasBooks, id)
	}
	return err
}

func (s *genreService) SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.PageResult[model.GenreViewModel]{}, model.ErrSearchTermMissing
	}

	result, err := s.genres.GetByFilter(ctx, storage.ContainsFold("name", name), page)
	if err != nil {
		return storage.PageResult[model.GenreViewModel]{}, err
	}
	return storage.MapPage(result, model.Genre.ToViewModel), nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// stubStore satisfies storage.EntityStore with overridable functions and
// records which operations ran, so tests can assert both behavior and
// call order side effects.
type stubStore[T any] struct {
	getAllFn      func(ctx context.Context, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error)
	getByIDFn     func(ctx context.Context, id uuid.UUID, includes ...storage.Include) (*T, error)
	findFn        func(ctx context.Context, page storage.PageRequest, predicate storage.Predicate, includes ...storage.Include) (storage.PageResult[T], error)
	addFn         func(ctx context.Context, entity *T) (*T, error)
	updateFn      func(ctx context.Context, entity *T) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	getByFilterFn func(ctx context.Context, predicate storage.Predicate, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error)

	addCalls    int
	updateCalls int
	deleteCalls int
	readCalls   int
}

func (s *stubStore[T]) GetAll(ctx context.Context, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error) {
	s.readCalls++
	if s.getAllFn == nil {
		return storage.PageResult[T]{}, nil
	}
	return s.getAllFn(ctx, page, includes...)
}

func (s *stubStore[T]) GetByID(ctx context.Context, id uuid.UUID, includes ...storage.Include) (*T, error) {
	s.readCalls++
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id, includes...)
}

func (s *stubStore[T]) Find(ctx context.Context, page storage.PageRequest, predicate storage.Predicate, includes ...storage.Include) (storage.PageResult[T], error) {
	s.readCalls++
	if s.findFn == nil {
		return storage.PageResult[T]{}, nil
	}
	return s.findFn(ctx, page, predicate, includes...)
}

func (s *stubStore[T]) SingleOrDefault(ctx context.Context, predicate storage.Predicate, includes ...storage.Include) (*T, error) {
	s.readCalls++
	return nil, nil
}

func (s *stubStore[T]) Add(ctx context.Context, entity *T) (*T, error) {
	s.addCalls++
	if s.addFn == nil {
		return entity, nil
	}
	return s.addFn(ctx, entity)
}

func (s *stubStore[T]) Update(ctx context.Context, entity *T) error {
	s.updateCalls++
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, entity)
}

func (s *stubStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleteCalls++
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubStore[T]) GetByFilter(ctx context.Context, predicate storage.Predicate, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error) {
	s.readCalls++
	if s.getByFilterFn == nil {
		return storage.PageResult[T]{}, nil
	}
	return s.getByFilterFn(ctx, predicate, page, includes...)
}

func (s *stubStore[T]) GetOrdered(ctx context.Context, order storage.OrderBy, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error) {
	s.readCalls++
	return storage.PageResult[T]{}, nil
}

func (s *stubStore[T]) GetFilteredAndOrdered(ctx context.Context, predicate storage.Predicate, order storage.OrderBy, page storage.PageRequest, includes ...storage.Include) (storage.PageResult[T], error) {
	s.readCalls++
	return storage.PageResult[T]{}, nil
}

func mustPage(number, size int) storage.PageRequest {
	page, err := storage.NewPageRequest(number, size)
	if err != nil {
		panic(err)
	}
	return page
}

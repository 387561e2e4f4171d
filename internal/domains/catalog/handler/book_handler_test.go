package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/storage"
)

type stubBookService struct {
	getAllFn      func(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	getFn         func(ctx context.Context, id uuid.UUID) (*model.BookViewModel, error)
	getByAuthorFn func(ctx context.Context, authorID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	getByGenreFn  func(ctx context.Context, genreID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
	createFn      func(ctx context.Context, req model.CreateBookRequest) (*model.BookViewModel, error)
	updateFn      func(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	searchFn      func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error)
}

func (s *stubBookService) GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if s.getAllFn == nil {
		return storage.PageResult[model.BookViewModel]{}, nil
	}
	return s.getAllFn(ctx, page)
}

func (s *stubBookService) GetByID(ctx context.Context, id uuid.UUID) (*model.BookViewModel, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubBookService) GetByAuthorID(ctx context.Context, authorID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if s.getByAuthorFn == nil {
		return storage.PageResult[model.BookViewModel]{}, nil
	}
	return s.getByAuthorFn(ctx, authorID, page)
}

func (s *stubBookService) GetByGenreID(ctx context.Context, genreID uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if s.getByGenreFn == nil {
		return storage.PageResult[model.BookViewModel]{}, nil
	}
	return s.getByGenreFn(ctx, genreID, page)
}

func (s *stubBookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookViewModel, error) {
	if s.createFn == nil {
		return nil, nil
	}
	return s.createFn(ctx, req)
}

func (s *stubBookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, id, req)
}

func (s *stubBookService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubBookService) SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
	if s.searchFn == nil {
		return storage.PageResult[model.BookViewModel]{}, nil
	}
	return s.searchFn(ctx, name, page)
}

func newBookRouter(svc *stubBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewBookHandler(svc)
	books := router.Group("/books")
	books.GET("", h.GetAll)
	books.GET("/search", h.Search)
	books.GET("/author/:authorId", h.GetByAuthor)
	books.GET("/genre/:genreId", h.GetByGenre)
	books.GET("/:id", h.GetByID)
	books.POST("", h.Create)
	books.PUT("/:id", h.Update)
	books.DELETE("/:id", h.Delete)

	return router
}

func TestBookHandlerGetByAuthor(t *testing.T) {
	t.Run("passes the author id through", func(t *testing.T) {
		authorID := uuid.New()
		svc := &stubBookService{
			getByAuthorFn: func(ctx context.Context, got uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				assert.Equal(t, authorID, got)
				return storage.NewPageResult([]model.BookViewModel{
					{ID: uuid.New(), Title: "O Alquimista", AuthorName: "Paulo Coelho"},
				}, page, 1), nil
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/author/"+authorID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authorName":"Paulo Coelho"`)
	})

	t.Run("invalid author id", func(t *testing.T) {
		router := newBookRouter(&stubBookService{})

		w := doRequest(router, http.MethodGet, "/books/author/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown author returns 404", func(t *testing.T) {
		svc := &stubBookService{
			getByAuthorFn: func(ctx context.Context, got uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				return storage.PageResult[model.BookViewModel]{}, model.ErrAuthorNotFound
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/author/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandlerGetByGenre(t *testing.T) {
	t.Run("unknown genre returns 404", func(t *testing.T) {
		svc := &stubBookService{
			getByGenreFn: func(ctx context.Context, got uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				return storage.PageResult[model.BookViewModel]{}, model.ErrGenreNotFound
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/genre/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad pagination is rejected before the service runs", func(t *testing.T) {
		called := false
		svc := &stubBookService{
			getByGenreFn: func(ctx context.Context, got uuid.UUID, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				called = true
				return storage.PageResult[model.BookViewModel]{}, nil
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/genre/"+uuid.NewString()+"?pageNumber=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestBookHandlerGetByID(t *testing.T) {
	t.Run("found with flattened names", func(t *testing.T) {
		id := uuid.New()
		svc := &stubBookService{
			getFn: func(ctx context.Context, got uuid.UUID) (*model.BookViewModel, error) {
				return &model.BookViewModel{
					ID: id, Title: "Dom Casmurro",
					AuthorName: "Machado de Assis", GenreName: "Romance",
				}, nil
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/"+id.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Machado de Assis", body["authorName"])
		assert.Equal(t, "Romance", body["genreName"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubBookService{
			getFn: func(ctx context.Context, got uuid.UUID) (*model.BookViewModel, error) {
				return nil, model.ErrBookNotFound
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandlerCreate(t *testing.T) {
	t.Run("unknown author surfaces as 404", func(t *testing.T) {
		svc := &stubBookService{
			createFn: func(ctx context.Context, req model.CreateBookRequest) (*model.BookViewModel, error) {
				return nil, model.ErrAuthorNotFound
			},
		}
		router := newBookRouter(svc)

		body := `{"title":"X","authorId":"` + uuid.NewString() + `","genreId":"` + uuid.NewString() + `"}`
		w := doRequest(router, http.MethodPost, "/books", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newBookRouter(&stubBookService{})

		w := doRequest(router, http.MethodPost, "/books", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandlerDelete(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		router := newBookRouter(&stubBookService{})

		w := doRequest(router, http.MethodDelete, "/books/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing book returns 404", func(t *testing.T) {
		svc := &stubBookService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return model.ErrBookNotFound
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodDelete, "/books/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandlerSearch(t *testing.T) {
	t.Run("passes the term through", func(t *testing.T) {
		svc := &stubBookService{
			searchFn: func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				assert.Equal(t, "casmurro", name)
				return storage.NewPageResult([]model.BookViewModel{}, page, 0), nil
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/search?name=casmurro", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing term returns 400", func(t *testing.T) {
		svc := &stubBookService{
			searchFn: func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.BookViewModel], error) {
				return storage.PageResult[model.BookViewModel]{}, model.ErrSearchTermMissing
			},
		}
		router := newBookRouter(svc)

		w := doRequest(router, http.MethodGet, "/books/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/storage"
)

type stubGenreService struct {
	getAllFn       func(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error)
	getFn          func(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error)
	getWithBooksFn func(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error)
	createFn       func(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error)
	updateFn       func(ctx context.Context, id uuid.UUID, req model.UpdateGenreRequest) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	searchFn       func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error)
}

func (s *stubGenreService) GetAll(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	if s.getAllFn == nil {
		return storage.PageResult[model.GenreViewModel]{}, nil
	}
	return s.getAllFn(ctx, page)
}

func (s *stubGenreService) GetAllWithBooks(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	return s.GetAll(ctx, page)
}

func (s *stubGenreService) GetByID(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubGenreService) GetByIDWithBooks(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error) {
	if s.getWithBooksFn == nil {
		return s.GetByID(ctx, id)
	}
	return s.getWithBooksFn(ctx, id)
}

func (s *stubGenreService) Create(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error) {
	if s.createFn == nil {
		return nil, nil
	}
	return s.createFn(ctx, req)
}

func (s *stubGenreService) Update(ctx context.Context, id uuid.UUID, req model.UpdateGenreRequest) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, id, req)
}

func (s *stubGenreService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubGenreService) SearchByName(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
	if s.searchFn == nil {
		return storage.PageResult[model.GenreViewModel]{}, nil
	}
	return s.searchFn(ctx, name, page)
}

func newGenreRouter(svc *stubGenreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewGenreHandler(svc)
	genres := router.Group("/genres")
	genres.GET("", h.GetAll)
	genres.GET("/with-books", h.GetAllWithBooks)
	genres.GET("/search", h.Search)
	genres.GET("/:id", h.GetByID)
	genres.GET("/:id/with-books", h.GetByIDWithBooks)
	genres.POST("", h.Create)
	genres.PUT("/:id", h.Update)
	genres.DELETE("/:id", h.Delete)

	return router
}

func TestGenreHandlerGetAll(t *testing.T) {
	t.Run("returns the page result shape", func(t *testing.T) {
		svc := &stubGenreService{
			getAllFn: func(ctx context.Context, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
				return storage.NewPageResult([]model.GenreViewModel{
					{ID: uuid.New(), Name: "Fantasia"},
				}, page, 9), nil
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodGet, "/genres", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "items")
		assert.Contains(t, body, "totalCount")
		assert.EqualValues(t, 9, body["totalCount"])
	})

	t.Run("out of range pagination is rejected", func(t *testing.T) {
		router := newGenreRouter(&stubGenreService{})

		w := doRequest(router, http.MethodGet, "/genres?pageSize=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandlerGetByIDWithBooks(t *testing.T) {
	id := uuid.New()
	svc := &stubGenreService{
		getWithBooksFn: func(ctx context.Context, got uuid.UUID) (*model.GenreViewModel, error) {
			assert.Equal(t, id, got)
			return &model.GenreViewModel{
				ID: id, Name: "Romance",
				Books: []model.BookViewModel{{ID: uuid.New(), Title: "Dom Casmurro"}},
			}, nil
		},
	}
	router := newGenreRouter(svc)

	w := doRequest(router, http.MethodGet, "/genres/"+id.String()+"/with-books", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Dom Casmurro"`)
}

func TestGenreHandlerGetByID(t *testing.T) {
	t.Run("invalid uuid", func(t *testing.T) {
		router := newGenreRouter(&stubGenreService{})

		w := doRequest(router, http.MethodGet, "/genres/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubGenreService{
			getFn: func(ctx context.Context, id uuid.UUID) (*model.GenreViewModel, error) {
				return nil, model.ErrGenreNotFound
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodGet, "/genres/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenreHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubGenreService{
			createFn: func(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error) {
				return &model.GenreViewModel{ID: uuid.New(), Name: req.Name}, nil
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodPost, "/genres", `{"name":"Suspense"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure returns 422 with details", func(t *testing.T) {
		svc := &stubGenreService{
			createFn: func(ctx context.Context, req model.CreateGenreRequest) (*model.GenreViewModel, error) {
				return nil, validation.Errors{"name": errors.New("cannot be blank")}
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodPost, "/genres", `{}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		errBody, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", errBody["code"])
		assert.Contains(t, errBody["details"], "name")
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newGenreRouter(&stubGenreService{})

		w := doRequest(router, http.MethodPost, "/genres", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandlerUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("no content on success", func(t *testing.T) {
		router := newGenreRouter(&stubGenreService{})

		w := doRequest(router, http.MethodPut, "/genres/"+id.String(),
			`{"id":"`+id.String()+`","name":"Romance"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("id mismatch returns 400", func(t *testing.T) {
		svc := &stubGenreService{
			updateFn: func(ctx context.Context, got uuid.UUID, req model.UpdateGenreRequest) error {
				return model.ErrIDMismatch
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodPut, "/genres/"+id.String(),
			`{"id":"`+uuid.NewString()+`","name":"Romance"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenreHandlerDelete(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		router := newGenreRouter(&stubGenreService{})

		w := doRequest(router, http.MethodDelete, "/genres/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("referenced genre returns 409", func(t *testing.T) {
		svc := &stubGenreService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return model.ErrGenreHasBooks
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodDelete, "/genres/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing genre returns 404", func(t *testing.T) {
		svc := &stubGenreService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return model.ErrGenreNotFound
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodDelete, "/genres/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenreHandlerSearch(t *testing.T) {
	t.Run("passes the term through", func(t *testing.T) {
		svc := &stubGenreService{
			searchFn: func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
				assert.Equal(t, "fan", name)
				return storage.NewPageResult([]model.GenreViewModel{}, page, 0), nil
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodGet, "/genres/search?name=fan", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing term returns 400", func(t *testing.T) {
		svc := &stubGenreService{
			searchFn: func(ctx context.Context, name string, page storage.PageRequest) (storage.PageResult[model.GenreViewModel], error) {
				return storage.PageResult[model.GenreViewModel]{}, model.ErrSearchTermMissing
			},
		}
		router := newGenreRouter(svc)

		w := doRequest(router, http.MethodGet, "/genres/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

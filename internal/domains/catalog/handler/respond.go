package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/shared/response"
	"github.com/lucasmudile/BookCatalog/internal/storage"
	"github.com/lucasmudile/BookCatalog/pkg/logger"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// parsePage reads pageNumber and pageSize from the query string. Missing
// params fall back to defaults; present but out-of-range values are
// rejected rather than clamped.
func parsePage(c *gin.Context) (storage.PageRequest, error) {
	number := defaultPageNumber
	size := defaultPageSize

	if raw := c.Query("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return storage.PageRequest{}, storage.ErrInvalidPage
		}
		number = n
	}
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return storage.PageRequest{}, storage.ErrInvalidPage
		}
		size = n
	}

	return storage.NewPageRequest(number, size)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

// respondError translates service and storage errors into HTTP responses.
// Anything without a mapping is a server fault and gets logged.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.UnprocessableEntity(c, "validation failed", verrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrAuthorNotFound),
		errors.Is(err, model.ErrGenreNotFound),
		errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, err.Error())

	case errors.Is(err, model.ErrIDMismatch),
		errors.Is(err, model.ErrSearchTermMissing),
		errors.Is(err, storage.ErrInvalidPage):
		response.BadRequest(c, err.Error())

	case errors.Is(err, model.ErrAuthorHasBooks),
		errors.Is(err, model.ErrGenreHasBooks),
		errors.Is(err, storage.ErrReferenced):
		response.Conflict(c, err.Error())

	default:
		logger.Error("request failed", err)
		response.InternalServerError(c, "internal server error")
	}
}

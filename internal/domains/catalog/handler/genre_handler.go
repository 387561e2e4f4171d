package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/service"
	"github.com/lucasmudile/BookCatalog/internal/shared/response"
)

type GenreHandler struct {
	service service.GenreService
}

func NewGenreHandler(service service.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

// GetAll - GET /v1/genres
func (h *GenreHandler) GetAll(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// GetAllWithBooks - GET /v1/genres/with-books
func (h *GenreHandler) GetAllWithBooks(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.GetAllWithBooks(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByID - GET /v1/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, genre)
}

// GetByIDWithBooks - GET /v1/genres/:id/with-books
func (h *GenreHandler) GetByIDWithBooks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetByIDWithBooks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, genre)
}

// Create - POST /v1/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req model.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	genre, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, genre)
}

// Update - PUT /v1/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Delete - DELETE /v1/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Search - GET /v1/genres/search?name=
func (h *GenreHandler) Search(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.SearchByName(c.Request.Context(), c.Query("name"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

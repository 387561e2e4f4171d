package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/service"
	"github.com/lucasmudile/BookCatalog/internal/shared/response"
)

type AuthorHandler struct {
	service service.AuthorService
}

func NewAuthorHandler(service service.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// GetAll - GET /v1/authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
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

// GetAllWithBooks - GET /v1/authors/with-books
func (h *AuthorHandler) GetAllWithBooks(c *gin.Context) {
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

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, author)
}

// GetByIDWithBooks - GET /v1/authors/:id/with-books
func (h *AuthorHandler) GetByIDWithBooks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	author, err := h.service.GetByIDWithBooks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, author)
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	author, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, author)
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
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

// Delete - DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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

// Search - GET /v1/authors/search?name=
func (h *AuthorHandler) Search(c *gin.Context) {
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

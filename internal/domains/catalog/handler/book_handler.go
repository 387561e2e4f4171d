package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/service"
	"github.com/lucasmudile/BookCatalog/internal/shared/response"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(service service.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// GetAll - GET /v1/books
func (h *BookHandler) GetAll(c *gin.Context) {
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

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, book)
}

// GetByAuthor - GET /v1/books/author/:authorId
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "authorId")
	if !ok {
		return
	}

	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.GetByAuthorID(c.Request.Context(), authorID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// GetByGenre - GET /v1/books/genre/:genreId
func (h *BookHandler) GetByGenre(c *gin.Context) {
	genreID, ok := parseID(c, "genreId")
	if !ok {
		return
	}

	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.GetByGenreID(c.Request.Context(), genreID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, book)
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateBookRequest
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

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
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

// Search - GET /v1/books/search?name=
func (h *BookHandler) Search(c *gin.Context) {
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

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasmudile/BookCatalog/internal/shared/middleware"
	"github.com/lucasmudile/BookCatalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupGenreRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(rg *gin.RouterGroup, c *container.Container) {
	authors := rg.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/with-books", c.AuthorHandler.GetAllWithBooks)
		authors.GET("/search", c.AuthorHandler.Search)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.GET("/:id/with-books", c.AuthorHandler.GetByIDWithBooks)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupGenreRoutes(rg *gin.RouterGroup, c *container.Container) {
	genres := rg.Group("/genres")
	{
		genres.GET("", c.GenreHandler.GetAll)
		genres.GET("/with-books", c.GenreHandler.GetAllWithBooks)
		genres.GET("/search", c.GenreHandler.Search)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.GET("/:id/with-books", c.GenreHandler.GetByIDWithBooks)
		genres.POST("", c.GenreHandler.Create)
		genres.PUT("/:id", c.GenreHandler.Update)
		genres.DELETE("/:id", c.GenreHandler.Delete)
	}
}

func setupBookRoutes(rg *gin.RouterGroup, c *container.Container) {
	books := rg.Group("/books")
	{
		books.GET("", c.BookHandler.GetAll)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/author/:authorId", c.BookHandler.GetByAuthor)
		books.GET("/genre/:genreId", c.BookHandler.GetByGenre)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", c.BookHandler.Create)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}

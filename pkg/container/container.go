package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lucasmudile/BookCatalog/internal/config"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/handler"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/model"
	"github.com/lucasmudile/BookCatalog/internal/domains/catalog/service"
	"github.com/lucasmudile/BookCatalog/internal/infrastructure/database"
	"github.com/lucasmudile/BookCatalog/internal/storage"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorStore storage.EntityStore[model.Author]
	GenreStore  storage.EntityStore[model.Genre]
	BookStore   storage.EntityStore[model.Book]

	AuthorService service.AuthorService
	GenreService  service.GenreService
	BookService   service.BookService

	AuthorHandler *handler.AuthorHandler
	GenreHandler  *handler.GenreHandler
	BookHandler   *handler.BookHandler
}

// NewContainer builds the whole graph: config first, then the database,
// then stores, services and handlers on top.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := c.DB.Migrate(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	c.AuthorStore = storage.NewPgStore(c.DB.Pool, model.AuthorSchema())
	c.GenreStore = storage.NewPgStore(c.DB.Pool, model.GenreSchema())
	c.BookStore = storage.NewPgStore(c.DB.Pool, model.BookSchema())

	c.AuthorService = service.NewAuthorService(c.AuthorStore)
	c.GenreService = service.NewGenreService(c.GenreStore)
	c.BookService = service.NewBookService(c.BookStore, c.AuthorStore, c.GenreStore)

	c.AuthorHandler = handler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = handler.NewGenreHandler(c.GenreService)
	c.BookHandler = handler.NewBookHandler(c.BookService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases everything the container owns. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}

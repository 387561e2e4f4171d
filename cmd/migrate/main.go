package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/lucasmudile/BookCatalog/internal/config"
	"github.com/lucasmudile/BookCatalog/internal/infrastructure/database"
	"github.com/lucasmudile/BookCatalog/pkg/logger"
)

// Applies the schema and, with -seed, loads the initial catalog fixture.
func main() {
	seed := flag.Bool("seed", false, "load seed data after migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}
	logger.Init("development")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load database config")
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	if *seed {
		if err := db.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	log.Info().Msg("done")
}

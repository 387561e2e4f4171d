package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// Migrate creates the catalog tables and indexes. The statements are
// idempotent, so running it on every startup is safe.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	log.Info().Msg("database schema up to date")
	return nil
}

// Seed loads the initial catalog fixture. Rows carry fixed identities
// and conflict-skip on insert, so reseeding never duplicates.
func (db *PostgresDB) Seed(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, seedSQL); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Info().Msg("seed data loaded")
	return nil
}

package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type DB struct {
	*pgxpool.Pool
}

// Initialise a new database connection. connString should be a valid postgres connection string (such as a postgres-url).
func NewDB(ctx context.Context, connString string) (*DB, error) {
	slog.Info("Connecting to postgres database")
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres database: %w", err)
	}
	return &DB{pool}, nil
}

// Migrate brings the database schema up to date by running the embedded
// goose migrations. The uniqueness guarantee of the address store depends on
// the constraints these migrations create, so call this before serving.
func (db *DB) Migrate(ctx context.Context) error {
	migrateFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("cannot get embedFS migrations folder: %w", err)
	}

	provider, err := goose.NewProvider(
		goose.DialectPostgres,
		stdlib.OpenDBFromPool(db.Pool),
		migrateFS,
	)
	if err != nil {
		return fmt.Errorf("cannot create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("cannot run database migrations: %w", err)
	}

	if err := provider.Close(); err != nil {
		return fmt.Errorf("cannot close goose provider connection: %w", err)
	}

	return nil
}

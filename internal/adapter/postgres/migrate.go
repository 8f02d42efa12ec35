package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/fritter-backend/migrations"
)

// OpenMigrator opens a database/sql handle on dsn and returns a goose provider
// over the embedded migrations. goose requires *sql.DB; the caller closes it.
func OpenMigrator(ctx context.Context, dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db, nil
}

// Migrate applies all pending migrations and returns the versions applied.
func Migrate(ctx context.Context, dsn string) ([]int64, error) {
	provider, db, err := OpenMigrator(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

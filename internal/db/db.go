// Package db opens the credential database and brings its schema up to date.
// SQLite backs the default local file store; a PostgreSQL DSN selects the
// server engine instead. Both run the same embedded goose migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"symptomexplorer/internal/db/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the local database file and runs
// migrations. Idempotent: safe to call on every process start.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := migrate(ctx, handle, "sqlite3", "sqlite"); err != nil {
		_ = handle.Close()
		return nil, err
	}
	return handle, nil
}

// OpenPostgres connects to a PostgreSQL server and runs migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	handle, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres db: %w", err)
	}
	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("pinging postgres db: %w", err)
	}
	if err := migrate(ctx, handle, "postgres", "postgres"); err != nil {
		_ = handle.Close()
		return nil, err
	}
	return handle, nil
}

func migrate(ctx context.Context, handle *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Embed)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, handle, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

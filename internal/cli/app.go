// Package cli implements the interactive menus: login and account creation,
// the post-login report views, and admin account management. It is thin I/O
// glue over the users service and the dataset; no credential logic lives here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"symptomexplorer/internal/config"
	"symptomexplorer/internal/dataset"
	"symptomexplorer/internal/db"
	"symptomexplorer/internal/dbx"
	"symptomexplorer/internal/logging"
	"symptomexplorer/internal/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	users   *users.Service
	data    *dataset.Dataset
	reader  *bufio.Reader
	out     io.Writer
	current *users.Identity
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	slogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slogger).With("session", uuid.NewString())

	handle, newRepo, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if err := users.EnsureSeeded(ctx, handle, newRepo, logger); err != nil {
		return nil, fmt.Errorf("seeding error: %w", err)
	}

	svc, err := users.NewService(newRepo(handle), logger)
	if err != nil {
		return nil, err
	}

	data, err := dataset.Load(c.DatasetPath)
	if err != nil {
		// the credential store works without the dataset; report menus
		// are simply unavailable
		logger.Warn(ctx, "dataset unavailable", "path", c.DatasetPath, "error", err.Error())
		data = nil
	}

	return &App{
		config: c,
		logger: logger,
		users:  svc,
		data:   data,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// openStore picks the storage engine from config: a PostgreSQL DSN when set,
// otherwise the local SQLite file. Both paths run migrations first.
func openStore(ctx context.Context, c *config.Config) (*sql.DB, func(dbx.DBTX) users.Repository, error) {
	if c.DatabaseDSN != "" {
		handle, err := db.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return handle, func(tx dbx.DBTX) users.Repository { return users.NewPostgresRepository(tx) }, nil
	}

	handle, err := db.OpenSQLite(ctx, c.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return handle, func(tx dbx.DBTX) users.Repository { return users.NewSQLiteRepository(tx) }, nil
}

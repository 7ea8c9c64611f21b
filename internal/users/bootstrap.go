package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/dbx"
	"symptomexplorer/internal/logging"
)

// Seed is a demo account created at startup when absent.
type Seed struct {
	Username string
	Password string
	IsAdmin  bool
}

// SeedAccounts are the fixed demo credentials ensured on every start.
// They bypass the password policy; real accounts never do.
var SeedAccounts = []Seed{
	{Username: "admin", Password: "Admin123!", IsAdmin: true},
	{Username: "student1", Password: "Student123!", IsAdmin: false},
	{Username: "student2", Password: "Student123!", IsAdmin: false},
	{Username: "guest", Password: "Guest123!", IsAdmin: false},
}

// EnsureSeeded creates any missing seed accounts inside a single transaction.
// Safe to call on every startup: existing accounts are neither duplicated nor
// reset. newRepo builds a Repository over the transactional handle.
func EnsureSeeded(ctx context.Context, db *sql.DB, newRepo func(dbx.DBTX) Repository, logger logging.Logger) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		svc, err := NewService(newRepo(tx), logger)
		if err != nil {
			return err
		}

		for _, seed := range SeedAccounts {
			_, err := svc.repo.GetByUsername(ctx, seed.Username)
			if err == nil {
				continue
			}
			if !errors.Is(err, common.ErrNotFound) {
				return err
			}
			if err := svc.create(ctx, seed.Username, seed.Password, seed.IsAdmin, false); err != nil {
				return fmt.Errorf("seeding %q: %w", seed.Username, err)
			}
		}
		return nil
	})
}

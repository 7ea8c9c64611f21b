package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/dbx"
)

// SQLiteRepository implements Repository on top of a DBTX
// (either *sql.DB or *sql.Tx) for the local file store.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	query := `INSERT INTO users (username, salt, pw_hash, is_admin, created_at)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.Salt, account.PasswordHash,
		account.IsAdmin, account.CreatedAt.UTC().Format(time.RFC3339),
	).Scan(&account.ID)

	if err != nil {
		// modernc.org/sqlite reports constraint violations as plain errors.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	query := `SELECT id, username, salt, pw_hash, is_admin, created_at FROM users
	          WHERE username = ?`

	account := &Account{}
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.Salt, &account.PasswordHash,
		&account.IsAdmin, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if account.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at for %q: %w", username, err)
	}

	return account, nil
}

func (r *SQLiteRepository) UpdateCredentials(ctx context.Context, username string, salt, digest []byte) (bool, error) {
	query := `UPDATE users SET salt = ?, pw_hash = ? WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query, salt, digest, username)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, username string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]AccountInfo, error) {
	query := `SELECT username, is_admin FROM users
	          ORDER BY is_admin DESC, username ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []AccountInfo
	for rows.Next() {
		var info AccountInfo
		if err := rows.Scan(&info.Username, &info.IsAdmin); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

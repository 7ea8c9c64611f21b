package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/dbx"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// PostgresRepository implements Repository for a PostgreSQL backend.
// The logical schema is identical to the SQLite one.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	query := `INSERT INTO users (username, salt, pw_hash, is_admin, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.Salt, account.PasswordHash,
		account.IsAdmin, account.CreatedAt.UTC().Format(time.RFC3339),
	).Scan(&account.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	query := `SELECT id, username, salt, pw_hash, is_admin, created_at FROM users
	          WHERE username = $1`

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

func (r *PostgresRepository) UpdateCredentials(ctx context.Context, username string, salt, digest []byte) (bool, error) {
	query := `UPDATE users SET salt = $1, pw_hash = $2 WHERE username = $3`

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

func (r *PostgresRepository) Delete(ctx context.Context, username string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]AccountInfo, error) {
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

package users

import "context"

// Repository persists accounts. Implementations map engine-specific unique
// constraint violations to common.ErrUsernameTaken and missing rows to
// common.ErrNotFound; all other failures are wrapped storage errors.
type Repository interface {
	// Create inserts a new account and fills in its assigned ID.
	Create(ctx context.Context, account *Account) (*Account, error)

	// GetByUsername returns the full row, credential material included.
	// Only the users package may see salt/hash; callers outside it go
	// through Service, which strips credentials.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// UpdateCredentials replaces salt and digest together for the given
	// username. Returns false when no row matched.
	UpdateCredentials(ctx context.Context, username string, salt, digest []byte) (bool, error)

	// Delete removes the row if present and reports whether one was removed.
	Delete(ctx context.Context, username string) (bool, error)

	// List returns all accounts ordered admins first, then by username.
	List(ctx context.Context) ([]AccountInfo, error)
}

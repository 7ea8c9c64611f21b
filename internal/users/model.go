package users

import "time"

// Account is a persisted user row. Salt and PasswordHash are generated
// together and replaced together; they never leave the users package.
type Account struct {
	ID           int64
	Username     string
	Salt         []byte
	PasswordHash []byte
	IsAdmin      bool
	CreatedAt    time.Time
}

// Identity is the projection of an Account returned on successful
// authentication. It carries no credential material and is safe to hold in
// caller state for the session's lifetime. It is a point-in-time snapshot:
// deleting or modifying the account does not invalidate it.
type Identity struct {
	ID       int64
	Username string
	IsAdmin  bool
}

// AccountInfo is the listing projection: admins first, then by username.
type AccountInfo struct {
	Username string
	IsAdmin  bool
}

func (a *Account) identity() *Identity {
	return &Identity{ID: a.ID, Username: a.Username, IsAdmin: a.IsAdmin}
}

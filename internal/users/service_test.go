package users

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(NewSQLiteRepository(setupDB(t)), discardLogger())
	require.NoError(t, err)
	return svc
}

func TestCreateThenAuthenticate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	id, err := svc.Authenticate(ctx, "alice", "Valid123!")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "alice", id.Username)
	assert.False(t, id.IsAdmin)
	assert.NotZero(t, id.ID)
}

func TestAuthenticate_FailurePathsIndistinguishable(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	// wrong password for an existing account
	id, err := svc.Authenticate(ctx, "alice", "Wrong123!")
	require.NoError(t, err)
	assert.Nil(t, id)

	// unknown username, same observable outcome
	id, err = svc.Authenticate(ctx, "nobody", "Valid123!")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestAuthenticate_UnknownUserStillDerivesDigest(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	start := time.Now()
	_, err := svc.Authenticate(ctx, "alice", "Wrong123!")
	require.NoError(t, err)
	wrongPassword := time.Since(start)

	start = time.Now()
	_, err = svc.Authenticate(ctx, "nobody", "Wrong123!")
	require.NoError(t, err)
	unknownUser := time.Since(start)

	// Both paths run one key derivation; the unknown-user path must not be
	// a cheap early return. A quarter of the known-user cost is a very loose
	// bound that still catches a skipped derivation.
	assert.Greater(t, unknownUser, wrongPassword/4,
		"unknown-user authentication must cost a key derivation")
}

func TestAuthenticate_EmptyInput(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	id, err := svc.Authenticate(ctx, "", "Valid123!")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = svc.Authenticate(ctx, "alice", "")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCreate_PolicyEnforced(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	err := svc.Create(ctx, "alice", "weak", false)

	var policyErr *common.PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "password must be at least 8 characters", policyErr.Reason)

	// nothing was written
	id, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCreate_EmptyUsername(t *testing.T) {
	svc := setupService(t)

	err := svc.Create(context.Background(), "   ", "Valid123!", false)
	assert.ErrorIs(t, err, common.ErrEmptyUsername)
}

func TestCreate_TrimsUsername(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "  alice  ", "Valid123!", false))

	id, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "alice", id.Username)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	err := svc.Create(ctx, "alice", "Other123!", true)
	assert.ErrorIs(t, err, common.ErrUsernameTaken)
}

func TestSetPassword_RoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	updated, err := svc.SetPassword(ctx, "alice", "Fresh456$")
	require.NoError(t, err)
	assert.True(t, updated)

	id, err := svc.Authenticate(ctx, "alice", "Fresh456$")
	require.NoError(t, err)
	assert.NotNil(t, id)

	// the old password no longer works
	id, err = svc.Authenticate(ctx, "alice", "Valid123!")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSetPassword_RegeneratesSalt(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	svc, err := NewService(repo, discardLogger())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))
	before, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.SetPassword(ctx, "alice", "Fresh456$")
	require.NoError(t, err)

	after, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, before.Salt, after.Salt, "salt must be replaced together with the digest")
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
}

func TestSetPassword_UnknownUser(t *testing.T) {
	svc := setupService(t)

	updated, err := svc.SetPassword(context.Background(), "nobody", "Fresh456$")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestSetPassword_PolicyRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	updated, err := svc.SetPassword(ctx, "alice", "weak")
	var policyErr *common.PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.False(t, updated)

	// the old password still works
	id, err := svc.Authenticate(ctx, "alice", "Valid123!")
	require.NoError(t, err)
	assert.NotNil(t, id)
}

func TestDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", false))

	deleted, err := svc.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	// authentication is gone with the account
	id, err := svc.Authenticate(ctx, "alice", "Valid123!")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestDelete_UnknownUser(t *testing.T) {
	svc := setupService(t)

	deleted, err := svc.Delete(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetByUsername_NoCredentialMaterial(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "alice", "Valid123!", true))

	id, err := svc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "alice", id.Username)
	assert.True(t, id.IsAdmin)
}

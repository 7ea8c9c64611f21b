// Package users owns the persisted account state: password policy, salted
// credential storage and verification, and administrative account management.
// No other package writes the users table or sees salt/hash material.
package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/cryptox"
	"symptomexplorer/internal/logging"
)

// Service orchestrates validation, hashing and repository access for all
// account operations. Every public method is atomic: it either completes or
// leaves the store unchanged.
type Service struct {
	repo   Repository
	logger logging.Logger

	// Decoy credentials used when authenticating an unknown username, so
	// that the unknown-user and wrong-password paths run the same key
	// derivation and the same constant-time comparison.
	decoySalt   []byte
	decoyDigest []byte
}

func NewService(repo Repository, logger logging.Logger) (*Service, error) {
	decoySalt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	decoyPassword, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	decoyDigest, err := cryptox.HashPassword(string(decoyPassword), decoySalt)
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:        repo,
		logger:      logger,
		decoySalt:   decoySalt,
		decoyDigest: decoyDigest,
	}, nil
}

// Create adds a new account after policy validation. It returns
// common.ErrUsernameTaken when the username already exists and a
// *common.PolicyError when the password fails the complexity rules.
func (s *Service) Create(ctx context.Context, username, password string, isAdmin bool) error {
	return s.create(ctx, username, password, isAdmin, true)
}

// create is the shared insertion path. enforcePolicy is false only for
// seeding fixed demo credentials; no user-facing flow reaches it.
func (s *Service) create(ctx context.Context, username, password string, isAdmin, enforcePolicy bool) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrEmptyUsername
	}
	if enforcePolicy {
		if ok, reason := ValidatePassword(password); !ok {
			return common.NewPolicyError(reason)
		}
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return err
	}
	digest, err := cryptox.HashPassword(password, salt)
	if err != nil {
		return err
	}

	account := &Account{
		Username:     username,
		Salt:         salt,
		PasswordHash: digest,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, account); err != nil {
		return err
	}

	s.logger.Info(ctx, "account created", "username", username, "is_admin", isAdmin)
	return nil
}

// Authenticate verifies a username/password pair and returns the Identity
// projection on success, nil otherwise. Unknown username and wrong password
// are indistinguishable to the caller: both derive one candidate digest and
// run one constant-time comparison.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	salt, stored := s.decoySalt, s.decoyDigest
	if account != nil {
		salt, stored = account.Salt, account.PasswordHash
	}

	candidate, err := cryptox.HashPassword(password, salt)
	if err != nil {
		return nil, nil
	}

	if cryptox.VerifyDigest(candidate, stored) && account != nil {
		return account.identity(), nil
	}

	s.logger.Debug(ctx, "authentication failed", "username", username)
	return nil, nil
}

// GetByUsername returns the Identity projection for an exact, case-sensitive
// username match after trimming, or nil when no such account exists.
func (s *Service) GetByUsername(ctx context.Context, username string) (*Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return account.identity(), nil
}

// SetPassword validates the new password, regenerates salt and digest
// together, and reports whether a row was updated. A policy rejection is a
// hard failure; an unknown username is (false, nil).
func (s *Service) SetPassword(ctx context.Context, username, newPassword string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	if ok, reason := ValidatePassword(newPassword); !ok {
		return false, common.NewPolicyError(reason)
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return false, err
	}
	digest, err := cryptox.HashPassword(newPassword, salt)
	if err != nil {
		return false, err
	}

	updated, err := s.repo.UpdateCredentials(ctx, username, salt, digest)
	if err != nil {
		return false, err
	}
	if updated {
		s.logger.Info(ctx, "password reset", "username", username)
	}
	return updated, nil
}

// Delete removes an account and all its credential material. Absence is not
// a failure: deleting an unknown username returns (false, nil).
func (s *Service) Delete(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info(ctx, "account deleted", "username", username)
	}
	return deleted, nil
}

// List returns every account as (username, is_admin), admins first, then
// alphabetical by username.
func (s *Service) List(ctx context.Context) ([]AccountInfo, error) {
	return s.repo.List(ctx)
}

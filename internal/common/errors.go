// Package common defines shared sentinel errors used across the credential
// store layers. Callers should use errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")

	// Input validation errors, detected before any storage access.
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// PolicyError reports a password rejected by the complexity rules. The Reason
// is the first failed rule, suitable for showing to the user.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("password rejected: %s", e.Reason)
}

// NewPolicyError wraps a rule message into a PolicyError.
func NewPolicyError(reason string) *PolicyError {
	return &PolicyError{Reason: reason}
}

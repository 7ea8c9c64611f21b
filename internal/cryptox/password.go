// Package cryptox implements password hashing for the credential store:
// PBKDF2-HMAC-SHA256 digests with per-account random salts and constant-time
// verification. Plaintext passwords are never logged or persisted; callers
// should wipe password buffers once they are done with them.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"

	"symptomexplorer/internal/common"
)

const (
	// Iterations is the PBKDF2 work factor. Changing it invalidates every
	// stored digest, so treat it as part of the schema.
	Iterations = 200_000

	// SaltSize is the per-account random salt length in bytes.
	SaltSize = 16

	// DigestSize is the derived key length in bytes.
	DigestSize = 32
)

// HashPassword derives the stored digest for a password and salt.
// Deterministic for a fixed (password, salt) pair. An empty password is
// rejected before any derivation work.
func HashPassword(password string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, common.ErrEmptyPassword
	}
	return pbkdf2.Key([]byte(password), salt, Iterations, DigestSize, sha256.New), nil
}

// NewSalt returns a fresh random salt. A new salt must be generated every
// time a digest is (re)computed; salts are never reused across a reset.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// VerifyDigest compares two digests in constant time. It must be the only
// way stored credential material is compared; a short-circuiting equality
// check would leak how long a matching prefix is.
func VerifyDigest(candidate, stored []byte) bool {
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}

// Wipe overwrites the contents of b with zeros. Useful for removing
// plaintext passwords from memory after use. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

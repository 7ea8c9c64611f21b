package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomexplorer/internal/common"
)

func TestHashPassword_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	a, err := HashPassword("Valid123!", salt)
	require.NoError(t, err)
	b, err := HashPassword("Valid123!", salt)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, DigestSize)
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)

	a, err := HashPassword("Valid123!", s1)
	require.NoError(t, err)
	b, err := HashPassword("Valid123!", s2)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same password with different salts must differ")
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	_, err := HashPassword("", []byte("salt"))
	assert.ErrorIs(t, err, common.ErrEmptyPassword)
}

func TestNewSalt_Size(t *testing.T) {
	s, err := NewSalt()
	require.NoError(t, err)
	assert.Len(t, s, SaltSize)
}

func TestVerifyDigest(t *testing.T) {
	salt := []byte("0123456789abcdef")
	d, err := HashPassword("Valid123!", salt)
	require.NoError(t, err)

	other, err := HashPassword("Other123!", salt)
	require.NoError(t, err)

	assert.True(t, VerifyDigest(d, d))
	assert.False(t, VerifyDigest(other, d))
	assert.False(t, VerifyDigest(d[:DigestSize-1], d))
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	assert.Equal(t, make([]byte, 6), b)

	Wipe(nil) // must not panic
}

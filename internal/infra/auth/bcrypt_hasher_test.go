package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	// An out-of-range cost falls back to the library default instead of
	// failing at hash time.
	hasher := NewBcryptHasher(-1)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secret", hash))
}

package auth_test

import (
	"testing"

	"github.com/jsvoboda/accounts-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash verifies against the plaintext", func(t *testing.T) {
		hashed, err := hasher.Hash("secret12345")

		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "secret12345", hashed)
		assert.NoError(t, hasher.Compare(hashed, "secret12345"))
	})

	t.Run("salted hashes differ between calls", func(t *testing.T) {
		first, err := hasher.Hash("secret12345")
		require.NoError(t, err)

		second, err := hasher.Hash("secret12345")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("compare rejects a wrong password", func(t *testing.T) {
		hashed, err := hasher.Hash("secret12345")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hashed, "not-the-secret"))
	})
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	// A nonsense cost must not produce an unusable hasher.
	hasher := auth.NewBcryptHasher(-1)

	hashed, err := hasher.Hash("secret12345")

	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hashed, "secret12345"))
}

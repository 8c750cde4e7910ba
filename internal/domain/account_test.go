package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		account, err := domain.NewAccount("Alice", "alice123", "secret12345")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "Alice", account.DisplayName)
		assert.Equal(t, "alice123", account.Username)
		assert.Equal(t, "secret12345", account.Password)
		assert.Empty(t, account.HashedPassword)
		assert.False(t, account.CreatedAt.IsZero())
		assert.Equal(t, account.CreatedAt, account.UpdatedAt)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := domain.NewAccount("Alice", "", "secret12345")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := domain.NewAccount("Alice", "alice123", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("whitespace-only password counts as empty", func(t *testing.T) {
		_, err := domain.NewAccount("Alice", "alice123", "   \t ")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("empty display name is allowed", func(t *testing.T) {
		account, err := domain.NewAccount("", "alice123", "secret12345")

		require.NoError(t, err)
		assert.Empty(t, account.DisplayName)
	})
}

func TestAccountValidate(t *testing.T) {
	t.Run("stored account with hash and no plaintext is valid", func(t *testing.T) {
		account := &domain.Account{
			ID:             uuid.New(),
			DisplayName:    "Alice",
			Username:       "alice123",
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		}

		assert.NoError(t, account.Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		account := &domain.Account{
			Username:       "alice123",
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		}

		assert.ErrorIs(t, account.Validate(), domain.ErrEmptyAccountID)
	})

	t.Run("no plaintext and no hash", func(t *testing.T) {
		account := &domain.Account{
			ID:       uuid.New(),
			Username: "alice123",
		}

		assert.ErrorIs(t, account.Validate(), domain.ErrEmptyPassword)
	})
}

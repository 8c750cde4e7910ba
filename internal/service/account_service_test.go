package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/mocks"
	"github.com/jsvoboda/accounts-api/internal/service"
	"github.com/jsvoboda/accounts-api/internal/service/auth"
	"github.com/jsvoboda/accounts-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testHasher = auth.NewBcryptHasher(bcrypt.MinCost)

func newTestService(accountStore *mocks.AccountStore) service.AccountService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return service.NewAccountService(
		accountStore,
		auth.NewUsernameOwnershipChecker(),
		testHasher,
		&mocks.TxRunner{},
		logger,
	)
}

func storedAccount(username string) *domain.Account {
	hashed, _ := testHasher.Hash("secret12345")
	now := time.Now().UTC().Add(-24 * time.Hour)
	return &domain.Account{
		ID:             uuid.New(),
		DisplayName:    "Alice",
		Username:       username,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestAccountService_Create(t *testing.T) {
	t.Run("successful creation hashes the password", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)
		accountStore.On("ExistsByUsername", mock.Anything, "alice123").Return(false, nil)
		accountStore.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.ID != uuid.Nil &&
				a.Username == "alice123" &&
				a.DisplayName == "Alice" &&
				a.Password == "" &&
				testHasher.Compare(a.HashedPassword, "secret12345") == nil
		})).Return(nil)

		svc := newTestService(accountStore)
		account, err := svc.Create(context.Background(), "Alice", "alice123", "secret12345")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "alice123", account.Username)
		assert.Equal(t, "Alice", account.DisplayName)
		assert.NotEqual(t, "secret12345", account.HashedPassword)
		assert.Empty(t, account.Password)
		accountStore.AssertExpectations(t)
	})

	t.Run("taken username fails without a write", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)
		accountStore.On("ExistsByUsername", mock.Anything, "bob").Return(true, nil)

		svc := newTestService(accountStore)
		_, err := svc.Create(context.Background(), "Bob", "bob", "secret12345")

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		accountStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank password fails without a write", func(t *testing.T) {
		for _, password := range []string{"", "   ", "\t\n"} {
			accountStore := new(mocks.AccountStore)
			accountStore.On("ExistsByUsername", mock.Anything, "alice123").Return(false, nil)

			svc := newTestService(accountStore)
			_, err := svc.Create(context.Background(), "Alice", "alice123", password)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrEmptyPassword)
			accountStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		accountStore := new(mocks.AccountStore)
		accountStore.On("ExistsByUsername", mock.Anything, "alice123").Return(false, nil)
		accountStore.On("Save", mock.Anything, mock.Anything).Return(storeErr)

		svc := newTestService(accountStore)
		_, err := svc.Create(context.Background(), "Alice", "alice123", "secret12345")

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAccountService_GetByID(t *testing.T) {
	t.Run("returns the stored account", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

		svc := newTestService(accountStore)
		account, err := svc.GetByID(context.Background(), existing.ID)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, account.ID)
		assert.Equal(t, "alice123", account.Username)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrAccountNotFound)

		svc := newTestService(accountStore)
		_, err := svc.GetByID(context.Background(), uuid.New())

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}

func TestAccountService_ListPage(t *testing.T) {
	t.Run("negative page index is rejected", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)

		svc := newTestService(accountStore)
		_, err := svc.ListPage(context.Background(), -1, 10)

		assert.ErrorIs(t, err, service.ErrInvalidPaging)
		accountStore.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero page size is rejected", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)

		svc := newTestService(accountStore)
		_, err := svc.ListPage(context.Background(), 0, 0)

		assert.ErrorIs(t, err, service.ErrInvalidPaging)
	})

	t.Run("page metadata is passed through unchanged", func(t *testing.T) {
		expected := &store.Page{
			Items:         []*domain.Account{storedAccount("alice123"), storedAccount("bob456")},
			PageIndex:     2,
			PageSize:      2,
			TotalPages:    5,
			TotalElements: 9,
		}
		accountStore := new(mocks.AccountStore)
		accountStore.On("FindPage", mock.Anything, 2, 2).Return(expected, nil)

		svc := newTestService(accountStore)
		page, err := svc.ListPage(context.Background(), 2, 2)

		require.NoError(t, err)
		assert.Equal(t, expected, page)
		assert.LessOrEqual(t, len(page.Items), page.PageSize)
	})
}

func TestAccountService_Update(t *testing.T) {
	t.Run("owner updates display name and username", func(t *testing.T) {
		existing := storedAccount("alice123")
		originalHash := existing.HashedPassword
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("ExistsByUsername", mock.Anything, "alice_new").Return(false, nil)
		accountStore.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
			return a.ID == existing.ID &&
				a.Username == "alice_new" &&
				a.DisplayName == "Alice Cooper" &&
				a.HashedPassword == originalHash
		})).Return(nil)

		svc := newTestService(accountStore)
		account, err := svc.Update(context.Background(), existing.ID, "alice123", "Alice Cooper", "alice_new", "")

		require.NoError(t, err)
		assert.Equal(t, "alice_new", account.Username)
		assert.Equal(t, originalHash, account.HashedPassword)
		accountStore.AssertExpectations(t)
	})

	t.Run("blank new password leaves the credential untouched", func(t *testing.T) {
		existing := storedAccount("alice123")
		originalHash := existing.HashedPassword
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(accountStore)
		account, err := svc.Update(context.Background(), existing.ID, "alice123", "Alice", "alice123", "   ")

		require.NoError(t, err)
		assert.Equal(t, originalHash, account.HashedPassword)
	})

	t.Run("non-blank new password is rehashed", func(t *testing.T) {
		existing := storedAccount("alice123")
		originalHash := existing.HashedPassword
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(accountStore)
		account, err := svc.Update(context.Background(), existing.ID, "alice123", "Alice", "alice123", "rotated-secret")

		require.NoError(t, err)
		assert.NotEqual(t, originalHash, account.HashedPassword)
		assert.NoError(t, testHasher.Compare(account.HashedPassword, "rotated-secret"))
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrAccountNotFound)

		svc := newTestService(accountStore)
		_, err := svc.Update(context.Background(), uuid.New(), "alice123", "Alice", "alice123", "")

		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("non-owner is rejected before any uniqueness check", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

		svc := newTestService(accountStore)
		_, err := svc.Update(context.Background(), existing.ID, "mallory", "Eve", "bob456", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrForbidden)
		// A non-owner must not learn whether a username is taken, and no
		// mutation may happen.
		accountStore.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
		accountStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("changing to a taken username fails with a conflict", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("ExistsByUsername", mock.Anything, "bob456").Return(true, nil)

		svc := newTestService(accountStore)
		_, err := svc.Update(context.Background(), existing.ID, "alice123", "Alice", "bob456", "")

		assert.ErrorIs(t, err, store.ErrUsernameExists)
		accountStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("keeping the current username skips the conflict check", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := newTestService(accountStore)
		_, err := svc.Update(context.Background(), existing.ID, "alice123", "Alice B.", "alice123", "")

		require.NoError(t, err)
		accountStore.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	})
}

func TestAccountService_Delete(t *testing.T) {
	t.Run("owner deletes the account", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		accountStore.On("Delete", mock.Anything, existing.ID).Return(nil)

		svc := newTestService(accountStore)
		err := svc.Delete(context.Background(), existing.ID, "alice123")

		require.NoError(t, err)
		accountStore.AssertExpectations(t)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrAccountNotFound)

		svc := newTestService(accountStore)
		err := svc.Delete(context.Background(), uuid.New(), "alice123")

		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

		svc := newTestService(accountStore)
		err := svc.Delete(context.Background(), existing.ID, "mallory")

		assert.ErrorIs(t, err, service.ErrForbidden)
		accountStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("empty principal is never an owner", func(t *testing.T) {
		existing := storedAccount("alice123")
		accountStore := new(mocks.AccountStore)
		accountStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

		svc := newTestService(accountStore)
		err := svc.Delete(context.Background(), existing.ID, "")

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/service/auth"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// AccountService provides account management operations. All operations are
// synchronous and return either a result or a typed error; none retry
// internally. Unknown store faults propagate wrapped but unclassified.
type AccountService interface {
	// Create registers a new account. The plaintext password is hashed before
	// persistence and never stored. Returns store.ErrUsernameExists if the
	// username is taken and domain.ErrEmptyPassword if the password is blank
	// (whitespace-only counts as blank).
	Create(ctx context.Context, displayName, username, password string) (*domain.Account, error)

	// GetByID retrieves an account by its ID. Reads are unrestricted; there
	// is no ownership check. Returns store.ErrAccountNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// ListPage returns one page of accounts in the store's stable order.
	// pageIndex is zero-based. Returns ErrInvalidPaging for a negative page
	// index or non-positive page size. Page metadata is reported exactly as
	// the store computed it.
	ListPage(ctx context.Context, pageIndex, pageSize int) (*store.Page, error)

	// Update modifies the account's display name and username and optionally
	// rotates its password. Only the account's owner may update it. The checks
	// run in a fixed order: existence, then ownership, then username
	// uniqueness, so a non-owner never learns whether a username is taken.
	// A blank newPassword leaves the stored credential untouched.
	Update(ctx context.Context, id uuid.UUID, actingPrincipal, displayName, username, newPassword string) (*domain.Account, error)

	// Delete permanently removes the account. Only the account's owner may
	// delete it. Returns store.ErrAccountNotFound or ErrForbidden.
	Delete(ctx context.Context, id uuid.UUID, actingPrincipal string) error
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accountStore store.AccountStore
	ownership    auth.OwnershipChecker
	hasher       auth.CredentialHasher
	txRunner     store.TxRunner
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService with explicit collaborators.
func NewAccountService(
	accountStore store.AccountStore,
	ownership auth.OwnershipChecker,
	hasher auth.CredentialHasher,
	txRunner store.TxRunner,
	logger *slog.Logger,
) AccountService {
	return &AccountServiceImpl{
		accountStore: accountStore,
		ownership:    ownership,
		hasher:       hasher,
		txRunner:     txRunner,
		logger:       logger.With(slog.String("component", "account_service")),
	}
}

// Create registers a new account with a hashed credential.
// The existence check here is the fast, friendly failure; the accounts
// table's UNIQUE constraint remains the authoritative guard against two
// concurrent creations racing past it.
func (s *AccountServiceImpl) Create(ctx context.Context, displayName, username, password string) (*domain.Account, error) {
	var account *domain.Account

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.accountStore.WithTx(tx)

		taken, err := txStore.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return store.ErrUsernameExists
		}

		if strings.TrimSpace(password) == "" {
			return domain.ErrEmptyPassword
		}

		account, err = domain.NewAccount(displayName, username, password)
		if err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}

		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		account.HashedPassword = hashed
		account.Password = ""

		return txStore.Save(ctx, account)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to create account with existing username",
				"username", username)
		} else if !errors.Is(err, domain.ErrEmptyPassword) {
			s.logger.Error("failed to create account",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	s.logger.Debug("created new account", "account_id", account.ID)
	return account, nil
}

// GetByID retrieves a single account.
func (s *AccountServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Error("failed to retrieve account",
				"error", err,
				"account_id", id)
		}
		return nil, err
	}
	return account, nil
}

// ListPage returns one page of accounts with the store's paging metadata.
func (s *AccountServiceImpl) ListPage(ctx context.Context, pageIndex, pageSize int) (*store.Page, error) {
	if pageIndex < 0 || pageSize <= 0 {
		return nil, ErrInvalidPaging
	}

	page, err := s.accountStore.FindPage(ctx, pageIndex, pageSize)
	if err != nil {
		s.logger.Error("failed to list accounts",
			"error", err,
			"page_index", pageIndex,
			"page_size", pageSize)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return page, nil
}

// Update applies new account data after the ordered existence, ownership and
// uniqueness checks. The whole check-then-write sequence runs in one
// transaction.
func (s *AccountServiceImpl) Update(ctx context.Context, id uuid.UUID, actingPrincipal, displayName, username, newPassword string) (*domain.Account, error) {
	var account *domain.Account

	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.accountStore.WithTx(tx)

		var err error
		account, err = txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !s.ownership.IsOwner(actingPrincipal, account.Username) {
			return ErrForbidden
		}

		if username != account.Username {
			taken, err := txStore.ExistsByUsername(ctx, username)
			if err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if taken {
				return store.ErrUsernameExists
			}
		}

		account.DisplayName = displayName
		account.Username = username

		if strings.TrimSpace(newPassword) != "" {
			hashed, err := s.hasher.Hash(newPassword)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			account.HashedPassword = hashed
			s.logger.Debug("password updated for account", "account_id", id)
		}

		return txStore.Save(ctx, account)
	})
	if err != nil {
		s.logUpdateFailure(err, id)
		return nil, err
	}

	s.logger.Debug("account updated", "account_id", id)
	return account, nil
}

func (s *AccountServiceImpl) logUpdateFailure(err error, id uuid.UUID) {
	switch {
	case errors.Is(err, store.ErrAccountNotFound), errors.Is(err, ErrForbidden), errors.Is(err, store.ErrUsernameExists):
		s.logger.Debug("account update rejected", "error", err, "account_id", id)
	default:
		s.logger.Error("failed to update account", "error", err, "account_id", id)
	}
}

// Delete permanently removes an account after the existence and ownership
// checks.
func (s *AccountServiceImpl) Delete(ctx context.Context, id uuid.UUID, actingPrincipal string) error {
	err := s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.accountStore.WithTx(tx)

		account, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !s.ownership.IsOwner(actingPrincipal, account.Username) {
			return ErrForbidden
		}

		return txStore.Delete(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAccountNotFound), errors.Is(err, ErrForbidden):
			s.logger.Debug("account deletion rejected", "error", err, "account_id", id)
		default:
			s.logger.Error("failed to delete account", "error", err, "account_id", id)
		}
		return err
	}

	s.logger.Debug("account deleted", "account_id", id)
	return nil
}

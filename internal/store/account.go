package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
)

// Page is one page of accounts together with the paging metadata reported
// by the storage engine. TotalPages and TotalElements come straight from
// the store; callers pass them through rather than recomputing them.
type Page struct {
	Items         []*domain.Account
	PageIndex     int
	PageSize      int
	TotalPages    int
	TotalElements int64
}

// AccountStore defines the interface for account data persistence.
//
// The storage engine is required to enforce a UNIQUE constraint on username.
// The service layer performs its own existence check for a fast, friendly
// failure, but the constraint is the authoritative guard against concurrent
// creations racing past that check.
type AccountStore interface {
	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	// The returned account carries the credential hash but never a plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByUsername retrieves an account by its username (exact, case-sensitive).
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// ExistsByUsername reports whether a live account holds the given username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByID reports whether an account with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save persists the account: it inserts a new row when the ID is not yet
	// stored and updates the existing row in place otherwise. The account's ID
	// is never reassigned. Returns ErrUsernameExists if the username is already
	// taken by a different account, and validation errors wrapped in
	// ErrInvalidEntity if the account data is invalid.
	Save(ctx context.Context, account *domain.Account) error

	// Delete removes an account from the store by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPage returns one page of accounts in the store's stable order
	// together with the total element and page counts. pageIndex is zero-based.
	FindPage(ctx context.Context, pageIndex, pageSize int) (*Page, error)

	// WithTx returns a new AccountStore instance bound to the provided
	// transaction, so multiple operations can run in a single unit of work.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) AccountStore
}

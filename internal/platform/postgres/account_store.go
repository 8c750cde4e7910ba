package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL error code for a unique constraint
// violation. The accounts table's UNIQUE (username) constraint is the
// authoritative uniqueness guard; any write racing past the service-level
// existence check surfaces here.
const uniqueViolationCode = "23505"

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// totalPages returns the number of pages needed for total elements at the
// given page size.
func totalPages(totalElements int64, pageSize int) int {
	if totalElements == 0 {
		return 0
	}
	return int((totalElements + int64(pageSize) - 1) / int64(pageSize))
}

// PostgresAccountStore implements the store.AccountStore interface using a
// PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that is initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetByID implements store.AccountStore.GetByID
func (s *PostgresAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, display_name, username, hashed_password, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.AccountStore.GetByUsername
func (s *PostgresAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, display_name, username, hashed_password, created_at, updated_at
		FROM accounts
		WHERE username = $1`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, username))
}

func (s *PostgresAccountStore) scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.DisplayName,
		&account.Username,
		&account.HashedPassword,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		return nil, store.NewStoreError("account", "get", "failed to scan row", err)
	}
	return &account, nil
}

// ExistsByUsername implements store.AccountStore.ExistsByUsername
func (s *PostgresAccountStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, store.NewStoreError("account", "exists_by_username", "query failed", err)
	}
	return exists, nil
}

// ExistsByID implements store.AccountStore.ExistsByID
func (s *PostgresAccountStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, store.NewStoreError("account", "exists_by_id", "query failed", err)
	}
	return exists, nil
}

// Save implements store.AccountStore.Save
// A row is inserted when the account's ID is not yet stored and updated in
// place otherwise; the ID itself is never reassigned.
func (s *PostgresAccountStore) Save(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO accounts (id, display_name, username, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    username = EXCLUDED.username,
		    hashed_password = EXCLUDED.hashed_password,
		    updated_at = now()`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.DisplayName,
		account.Username,
		account.HashedPassword,
		account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			s.logger.Debug("unique constraint violation on save",
				"account_id", account.ID)
			return store.ErrUsernameExists
		}
		return store.NewStoreError("account", "save", "exec failed", err)
	}

	return nil
}

// Delete implements store.AccountStore.Delete
func (s *PostgresAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return store.NewStoreError("account", "delete", "exec failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("account", "delete", "rows affected unavailable", err)
	}
	if affected == 0 {
		return store.ErrAccountNotFound
	}

	return nil
}

// FindPage implements store.AccountStore.FindPage
// Rows are ordered by creation time with the ID as a tiebreaker, which keeps
// the order stable across pages for an unchanged data set.
func (s *PostgresAccountStore) FindPage(ctx context.Context, pageIndex, pageSize int) (*store.Page, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, store.NewStoreError("account", "find_page", "count failed", err)
	}

	query := `
		SELECT id, display_name, username, hashed_password, created_at, updated_at
		FROM accounts
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, pageSize, pageIndex*pageSize)
	if err != nil {
		return nil, store.NewStoreError("account", "find_page", "query failed", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", "error", closeErr)
		}
	}()

	items := make([]*domain.Account, 0, pageSize)
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID,
			&account.DisplayName,
			&account.Username,
			&account.HashedPassword,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, store.NewStoreError("account", "find_page", "failed to scan row", err)
		}
		items = append(items, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("account", "find_page", "row iteration failed", err)
	}

	return &store.Page{
		Items:         items,
		PageIndex:     pageIndex,
		PageSize:      pageSize,
		TotalPages:    totalPages(total, pageSize),
		TotalElements: total,
	}, nil
}

// Package mocks provides shared test doubles for the store interfaces.
package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// AccountStore is a testify mock for store.AccountStore.
type AccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*AccountStore)(nil)

// GetByID implements store.AccountStore.
func (m *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByUsername implements store.AccountStore.
func (m *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// ExistsByUsername implements store.AccountStore.
func (m *AccountStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// ExistsByID implements store.AccountStore.
func (m *AccountStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Save implements store.AccountStore.
func (m *AccountStore) Save(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// Delete implements store.AccountStore.
func (m *AccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FindPage implements store.AccountStore.
func (m *AccountStore) FindPage(ctx context.Context, pageIndex, pageSize int) (*store.Page, error) {
	args := m.Called(ctx, pageIndex, pageSize)
	if page, ok := args.Get(0).(*store.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx implements store.AccountStore. The mock is transaction-agnostic and
// returns itself so expectations set on it keep applying inside transactions.
func (m *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}

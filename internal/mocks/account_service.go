package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/service"
	"github.com/jsvoboda/accounts-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// AccountService is a testify mock for service.AccountService.
type AccountService struct {
	mock.Mock
}

var _ service.AccountService = (*AccountService)(nil)

// Create implements service.AccountService.
func (m *AccountService) Create(ctx context.Context, displayName, username, password string) (*domain.Account, error) {
	args := m.Called(ctx, displayName, username, password)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID implements service.AccountService.
func (m *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListPage implements service.AccountService.
func (m *AccountService) ListPage(ctx context.Context, pageIndex, pageSize int) (*store.Page, error) {
	args := m.Called(ctx, pageIndex, pageSize)
	if page, ok := args.Get(0).(*store.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update implements service.AccountService.
func (m *AccountService) Update(ctx context.Context, id uuid.UUID, actingPrincipal, displayName, username, newPassword string) (*domain.Account, error) {
	args := m.Called(ctx, id, actingPrincipal, displayName, username, newPassword)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete implements service.AccountService.
func (m *AccountService) Delete(ctx context.Context, id uuid.UUID, actingPrincipal string) error {
	args := m.Called(ctx, id, actingPrincipal)
	return args.Error(0)
}

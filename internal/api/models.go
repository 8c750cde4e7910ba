package api

import (
	"github.com/google/uuid"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	DisplayName string `json:"display_name" validate:"max=255"`
	Username    string `json:"username"     validate:"required,max=255"`
	Password    string `json:"password"     validate:"required"`
}

// UpdateAccountRequest defines the payload for updating an account.
// Password is optional; leaving it blank keeps the current credential.
type UpdateAccountRequest struct {
	DisplayName string `json:"display_name" validate:"max=255"`
	Username    string `json:"username"     validate:"required,max=255"`
	Password    string `json:"password"     validate:"omitempty"`
}

// AccountResponse is the read view of an account. It never carries the
// credential hash or any plaintext secret.
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
}

// AccountPageResponse is one page of account views plus paging metadata,
// reported exactly as the store computed it.
type AccountPageResponse struct {
	Content       []AccountResponse `json:"content"`
	CurrentPage   int               `json:"current_page"`
	PageSize      int               `json:"page_size"`
	TotalPages    int               `json:"total_pages"`
	TotalElements int64             `json:"total_elements"`
}

// toAccountResponse projects a domain account onto its wire representation.
func toAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Username:    account.Username,
	}
}

// toAccountPageResponse projects a store page onto its wire representation.
func toAccountPageResponse(page *store.Page) AccountPageResponse {
	content := make([]AccountResponse, 0, len(page.Items))
	for _, account := range page.Items {
		content = append(content, toAccountResponse(account))
	}
	return AccountPageResponse{
		Content:       content,
		CurrentPage:   page.PageIndex,
		PageSize:      page.PageSize,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}
}

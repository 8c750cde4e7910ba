package api

import (
	"errors"
	"net/http"

	"github.com/jsvoboda/accounts-api/internal/api/shared"
	"github.com/jsvoboda/accounts-api/internal/domain"
	"github.com/jsvoboda/accounts-api/internal/service"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// MapErrorToStatusCode maps service and store errors to HTTP status codes.
// Every distinguishable error kind of the service layer has a stable mapping;
// anything unrecognized is treated as an opaque internal failure.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, service.ErrInvalidPaging),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the error.
// Internal details never leak to clients; they are logged instead.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, service.ErrForbidden):
		return "You can only modify your own account"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, domain.ErrEmptyPassword):
		return "Password cannot be empty"

	case errors.Is(err, service.ErrInvalidPaging):
		return "Page must be non-negative and size positive"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid account data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the appropriate error response for a service
// failure, combining the status mapping and the sanitized message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}

package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyAccountID is returned when an account has no ID assigned.
	ErrEmptyAccountID = errors.New("account ID cannot be empty")

	// ErrEmptyUsername is returned when an account has no username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when a blank password is supplied where
	// a non-blank one is required. Whitespace-only input counts as blank.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

package service

import "errors"

// Service-level errors for account operations. Not-found and duplicate
// conditions reuse the sentinels in internal/store so callers can match a
// single error kind regardless of which layer detected it.
var (
	// ErrForbidden is returned when the acting principal does not own the
	// account it is trying to mutate.
	ErrForbidden = errors.New("account can only be modified by its owner")

	// ErrInvalidPaging is returned for a negative page index or a
	// non-positive page size.
	ErrInvalidPaging = errors.New("page index must be non-negative and page size positive")
)

package api

import "errors"

// Common bookshop API errors.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the credential is missing, invalid, or
	// expired. Callers treat this as a forced logout.
	ErrUnauthorized = errors.New("unauthorized — please log in again")
	// ErrForbidden is returned when the account lacks permission.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a resource already exists.
	ErrConflict = errors.New("conflict — resource already exists")
)

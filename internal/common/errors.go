// Package common defines shared constants and sentinel errors used across
// the credential core and its HTTP boundary. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Validation errors (malformed or missing input).
	ErrValidation = errors.New("validation error")

	// Authentication errors. ErrInvalidCredentials deliberately covers both
	// the unknown-email and wrong-password cases so the two are
	// indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Authorization errors (authenticated but not owner or admin).
	ErrForbidden = errors.New("forbidden")

	// Generic internal fault, surfaced to clients as an opaque 500.
	ErrInternal = errors.New("internal error")
)

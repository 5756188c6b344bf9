package users

import (
	"context"
)

// Repository is the persistence boundary of the credential store. Email
// uniqueness is enforced by the store's own unique index, not by the
// application.
type Repository interface {
	// Create inserts a new user. A duplicate email (exact match as stored)
	// returns common.ErrDuplicateEmail.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail returns the user stored under email (case-sensitive exact
	// match), or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// TouchLastLogin updates the user's last-login and updated-at timestamps.
	TouchLastLogin(ctx context.Context, userID string) error
}

// Package users implements the credential store: the user model, its
// Postgres-backed repository, and the service orchestrating registration and
// login.
package users

import "time"

// Account roles. Role defaults to RoleClient at registration.
const (
	RoleClient      = "client"
	RoleAdmin       = "admin"
	RoleUpholsterer = "upholsterer"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleAdmin, RoleUpholsterer:
		return true
	}
	return false
}

// User is the principal record. PasswordHash and PasswordSalt never leave the
// credential core; Sanitized strips them before a user is handed to callers.
type User struct {
	ID                string
	Email             string
	FullName          string
	PhoneNumber       string
	Role              string
	PasswordHash      []byte
	PasswordSalt      []byte
	EmailConfirmed    bool
	ConfirmationToken string
	ResetToken        string
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Sanitized returns a copy of the user with all credential material removed.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = nil
	c.PasswordSalt = nil
	c.ConfirmationToken = ""
	c.ResetToken = ""
	return &c
}

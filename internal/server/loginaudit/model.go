// Package loginaudit provides the append-only record of authentication
// attempts, successful or not. Entries are independent of the session table
// and are never mutated or deleted except by cascade with the owning user.
package loginaudit

import "time"

// Entry is one authentication attempt. UserID is nil for attempts against an
// unknown email, where no account exists to attach the row to.
type Entry struct {
	ID            string
	UserID        *string
	Success       bool
	FailureReason string
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}

// Package sessions provides write-only bookkeeping of issued bearer tokens.
// A session row is created on every successful login or registration and is
// never mutated; it is logically dead once its expiry passes. The baseline
// contract is audit-only: nothing reads sessions back for revocation.
package sessions

import "time"

// Session records one token issuance together with the client metadata of the
// request that produced it. ExpiresAt is always CreatedAt plus the configured
// TTL.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	IPAddress string
	UserAgent string
}

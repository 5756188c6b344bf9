// Package products is the owned-resource collaborator of the credential core.
// It exists so the authorization gate and the existence-before-ownership
// ordering have a real resource to act on; full marketplace CRUD lives
// elsewhere.
package products

import "time"

// Product carries the owner id the authorization gate compares against.
type Product struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

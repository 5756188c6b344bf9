// Package authz implements the single authorization rule applied to every
// access-restricted operation on owned resources: admins may touch anything,
// everyone else only what they own.
package authz

import (
	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/server/auth"
)

// RoleAdmin is the role whose principals bypass the ownership check.
const RoleAdmin = "admin"

// Authorize returns nil when the principal may operate on a resource owned by
// resourceOwnerID, and common.ErrForbidden otherwise. There are no
// resource-type-specific exceptions. Callers must establish that the resource
// exists before invoking the gate so "not found" and "forbidden" stay
// distinguishable.
func Authorize(p auth.Principal, resourceOwnerID string) error {
	if p.Role == RoleAdmin {
		return nil
	}
	if p.ID != "" && p.ID == resourceOwnerID {
		return nil
	}
	return common.ErrForbidden
}

// Package db bundles the repositories behind one manager bound to a shared
// connection pool and runs the schema migrations at startup.
package db

import (
	"context"
	"database/sql"

	"github.com/refurnish/authcore/internal/server/loginaudit"
	"github.com/refurnish/authcore/internal/server/products"
	"github.com/refurnish/authcore/internal/server/sessions"
	"github.com/refurnish/authcore/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Sessions() sessions.Repository
	LoginAudit() loginaudit.Repository
	Products() products.Repository
}

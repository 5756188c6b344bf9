package sessions

import "context"

type Repository interface {
	// Create inserts a fresh session row. Rows are never updated or deleted
	// by the application; the owning user's deletion cascades.
	Create(ctx context.Context, session *Session) error
}

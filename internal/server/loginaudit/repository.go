package loginaudit

import "context"

type Repository interface {
	// Create appends one attempt row. Callers on the authentication path must
	// treat failures as best-effort: log and swallow, never unwind an
	// already-decided auth outcome.
	Create(ctx context.Context, entry *Entry) error
}

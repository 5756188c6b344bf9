package loginaudit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/refurnish/authcore/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO login_history (id, user_id, success, failure_reason, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	userID := sql.NullString{}
	if entry.UserID != nil {
		userID = sql.NullString{String: *entry.UserID, Valid: true}
	}
	reason := sql.NullString{String: entry.FailureReason, Valid: entry.FailureReason != ""}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, userID, entry.Success, reason,
		entry.IPAddress, entry.UserAgent, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

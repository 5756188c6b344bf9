package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/dbx"
)

// uniqueViolation is the Postgres error code raised when the users email
// unique index rejects an insert.
const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query := `
		INSERT INTO users (id, email, full_name, phone_number, role,
			password_hash, password_salt, email_confirmed, confirmation_token,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	phone := sql.NullString{String: user.PhoneNumber, Valid: user.PhoneNumber != ""}

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FullName, phone, user.Role,
		user.PasswordHash, user.PasswordSalt, user.EmailConfirmed,
		user.ConfirmationToken, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, full_name, phone_number, role, password_hash,
			password_salt, email_confirmed, confirmation_token, reset_token,
			last_login_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &User{}
	var (
		phone        sql.NullString
		confirmation sql.NullString
		reset        sql.NullString
		lastLogin    sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FullName, &phone, &user.Role,
		&user.PasswordHash, &user.PasswordSalt, &user.EmailConfirmed,
		&confirmation, &reset, &lastLogin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	user.PhoneNumber = phone.String
	user.ConfirmationToken = confirmation.String
	user.ResetToken = reset.String
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLoginAt = &t
	}

	return user, nil
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET last_login_at = now(), updated_at = now()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

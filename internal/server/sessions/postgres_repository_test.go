package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+sessions\s*\(id,\s*user_id,\s*token,\s*expires_at,\s*created_at,\s*ip_address,\s*user_agent\)`

	now := time.Now()
	s := &Session{
		ID:        "s-1",
		UserID:    "u-1",
		Token:     "tok",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8",
	}

	mock.ExpectExec(q).
		WithArgs(s.ID, s.UserID, s.Token, s.ExpiresAt, s.CreatedAt, s.IPAddress, s.UserAgent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+sessions`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &Session{ID: "s-1", UserID: "u-1"})
	if err == nil {
		t.Fatalf("expected wrapped db error, got nil")
	}
}

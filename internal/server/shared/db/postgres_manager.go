package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/refurnish/authcore/internal/server/loginaudit"
	"github.com/refurnish/authcore/internal/server/migrations"
	"github.com/refurnish/authcore/internal/server/products"
	"github.com/refurnish/authcore/internal/server/sessions"
	"github.com/refurnish/authcore/internal/server/users"
)

type PostgresRepositoryManager struct {
	db         *sql.DB
	users      users.Repository
	sessions   sessions.Repository
	loginAudit loginaudit.Repository
	products   products.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *PostgresRepositoryManager) LoginAudit() loginaudit.Repository {
	return m.loginAudit
}

func (m *PostgresRepositoryManager) Products() products.Repository {
	return m.products
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:         db,
		users:      users.NewPostgresRepository(db),
		sessions:   sessions.NewPostgresRepository(db),
		loginAudit: loginaudit.NewPostgresRepository(db),
		products:   products.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/refurnish/authcore/internal/common"
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

func (r *PostgresRepository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (id, owner_id, title, description, price_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.OwnerID, product.Title, product.Description,
		product.PriceCents, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT id, owner_id, title, description, price_cents, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	product := &Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.OwnerID, &product.Title, &product.Description,
		&product.PriceCents, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return product, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM products
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

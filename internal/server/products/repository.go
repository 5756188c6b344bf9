package products

import "context"

type Repository interface {
	Create(ctx context.Context, product *Product) error

	// GetByID returns common.ErrNotFound for an absent product.
	GetByID(ctx context.Context, id string) (*Product, error)

	Delete(ctx context.Context, id string) error
}

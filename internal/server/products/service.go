package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/server/auth"
	"github.com/refurnish/authcore/internal/server/authz"
)

// Service applies the authorization gate to product mutations. Existence is
// always checked before ownership so a 404 is never turned into a 403.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, principal auth.Principal, title, description string, priceCents int64) (*Product, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", common.ErrValidation)
	}

	now := time.Now()
	product := &Product{
		ID:          uuid.NewString(),
		OwnerID:     principal.ID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return product, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return product, nil
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id string) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if err := authz.Authorize(principal, product.OwnerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

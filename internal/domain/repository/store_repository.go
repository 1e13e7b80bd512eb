package repository

import (
	"context"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	Create(ctx context.Context, s *entity.Store) error
	ListWithRating(ctx context.Context) ([]entity.StoreWithRating, error)
}

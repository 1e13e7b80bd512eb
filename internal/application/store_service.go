package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	repo "github.com/ratehub/store-rating-api/internal/domain/repository"
)

type StoreService struct {
	Stores repo.StoreRepository
	Logger *logrus.Logger
}

func NewStoreService(stores repo.StoreRepository, logger *logrus.Logger) *StoreService {
	return &StoreService{Stores: stores, Logger: logger}
}

// ListWithRating returns every store with its average rating, 0 when unrated.
func (s *StoreService) ListWithRating(ctx context.Context) ([]entity.StoreWithRating, error) {
	return s.Stores.ListWithRating(ctx)
}

// Create inserts a store owned by the given user. Referential integrity on
// owner_id is enforced by the datastore.
func (s *StoreService) Create(ctx context.Context, name, email, address string, ownerID int64) error {
	st := &entity.Store{Name: name, Email: email, Address: address, OwnerID: ownerID}
	return s.Stores.Create(ctx, st)
}

package repository

import (
	"context"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
)

// RatingRepository is the rating ledger. Upsert must be a single atomic
// datastore operation so that concurrent submissions for the same
// (user, store) pair serialize to exactly one row.
type RatingRepository interface {
	Upsert(ctx context.Context, userID, storeID int64, rating int) error
	ListForUser(ctx context.Context, userID int64) ([]entity.UserRating, error)
	OwnerRollup(ctx context.Context, ownerID int64) ([]entity.OwnerStoreRollup, error)
	RatersForOwner(ctx context.Context, ownerID int64) ([]entity.StoreRater, error)
	Count(ctx context.Context) (int64, error)
}

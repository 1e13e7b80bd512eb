package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	repo "github.com/ratehub/store-rating-api/internal/domain/repository"
)

// RatingService fronts the rating ledger. The exactly-one-row-per-pair
// guarantee lives in the repository's atomic upsert; this layer never reads
// before writing.
type RatingService struct {
	Ratings repo.RatingRepository
	Logger  *logrus.Logger
}

func NewRatingService(ratings repo.RatingRepository, logger *logrus.Logger) *RatingService {
	return &RatingService{Ratings: ratings, Logger: logger}
}

// Submit records the caller's rating for a store, overwriting any earlier
// value for the same (user, store) pair.
func (s *RatingService) Submit(ctx context.Context, userID, storeID int64, rating int) error {
	if err := s.Ratings.Upsert(ctx, userID, storeID, rating); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":  userID,
				"store_id": storeID,
			}).Error("rating submit failed")
		}
		return err
	}
	return nil
}

// ListForUser returns the caller's own rating history.
func (s *RatingService) ListForUser(ctx context.Context, userID int64) ([]entity.UserRating, error) {
	return s.Ratings.ListForUser(ctx, userID)
}

// OwnerRollup returns one row per owned store, including unrated stores.
func (s *RatingService) OwnerRollup(ctx context.Context, ownerID int64) ([]entity.OwnerStoreRollup, error) {
	return s.Ratings.OwnerRollup(ctx, ownerID)
}

// RatersForOwner lists each individual rating against the owner's stores
// with the rater's identity attached.
func (s *RatingService) RatersForOwner(ctx context.Context, ownerID int64) ([]entity.StoreRater, error) {
	return s.Ratings.RatersForOwner(ctx, ownerID)
}

// Count is the global, unscoped number of ratings in the ledger.
func (s *RatingService) Count(ctx context.Context) (int64, error) {
	return s.Ratings.Count(ctx)
}

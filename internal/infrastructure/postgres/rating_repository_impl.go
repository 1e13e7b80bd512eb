package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	"github.com/ratehub/store-rating-api/internal/domain/repository"
)

type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert relies on the unique (user_id, store_id) constraint and ON CONFLICT
// so that concurrent submissions for the same pair serialize inside Postgres.
// A read-then-write sequence here would race.
func (r *RatingRepository) Upsert(ctx context.Context, userID, storeID int64, rating int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
	`, userID, storeID, rating)
	return err
}

func (r *RatingRepository) ListForUser(ctx context.Context, userID int64) ([]entity.UserRating, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.store_id, s.name, s.address, r.rating
		FROM ratings r
		JOIN stores s ON r.store_id = s.id
		WHERE r.user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]entity.UserRating, 0)
	for rows.Next() {
		var ur entity.UserRating
		if err := rows.Scan(&ur.StoreID, &ur.StoreName, &ur.StoreAddress, &ur.Rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, ur)
	}
	return ratings, rows.Err()
}

// OwnerRollup must use a LEFT JOIN: an owned store with zero ratings still
// appears, with a null average and a zero count.
func (r *RatingRepository) OwnerRollup(ctx context.Context, ownerID int64) ([]entity.OwnerStoreRollup, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.name, AVG(r.rating) AS avg_rating, COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rollups := make([]entity.OwnerStoreRollup, 0)
	for rows.Next() {
		var ro entity.OwnerStoreRollup
		if err := rows.Scan(&ro.StoreName, &ro.AvgRating, &ro.TotalRatings); err != nil {
			return nil, err
		}
		rollups = append(rollups, ro)
	}
	return rollups, rows.Err()
}

func (r *RatingRepository) RatersForOwner(ctx context.Context, ownerID int64) ([]entity.StoreRater, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.name, u.email, s.name, r.rating
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		JOIN stores s ON r.store_id = s.id
		WHERE s.owner_id = $1
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raters := make([]entity.StoreRater, 0)
	for rows.Next() {
		var sr entity.StoreRater
		if err := rows.Scan(&sr.UserName, &sr.UserEmail, &sr.StoreName, &sr.Rating); err != nil {
			return nil, err
		}
		raters = append(raters, sr)
	}
	return raters, rows.Err()
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count)
	return count, err
}

var _ repository.RatingRepository = (*RatingRepository)(nil)

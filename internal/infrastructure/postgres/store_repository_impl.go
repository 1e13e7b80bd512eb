package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	"github.com/ratehub/store-rating-api/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Create(ctx context.Context, s *entity.Store) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, s.Name, s.Email, s.Address, s.OwnerID)

	return row.Scan(&s.ID, &s.CreatedAt)
}

// ListWithRating left-joins ratings so stores with none still appear, with
// the average coalesced to 0.
func (r *StoreRepository) ListWithRating(ctx context.Context) ([]entity.StoreWithRating, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.name, s.email, s.address,
		       COALESCE(AVG(r.rating), 0) AS rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		GROUP BY s.id
		ORDER BY s.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]entity.StoreWithRating, 0)
	for rows.Next() {
		var s entity.StoreWithRating
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.AvgRating); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

var _ repository.StoreRepository = (*StoreRepository)(nil)

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
)

func TestUpsert_ConcurrentSameKeySerializes(t *testing.T) {
	ctx := context.Background()
	db := NewDB()

	owner := &entity.User{Name: "Owner", Email: "o@example.com", Role: entity.RoleStoreOwner}
	require.NoError(t, db.Users().Create(ctx, owner))
	rater := &entity.User{Name: "Rater", Email: "r@example.com", Role: entity.RoleUser}
	require.NoError(t, db.Users().Create(ctx, rater))
	store := &entity.Store{Name: "Store", Email: "s@example.com", OwnerID: owner.ID}
	require.NoError(t, db.Stores().Create(ctx, store))

	ratings := db.Ratings()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = ratings.Upsert(ctx, rater.ID, store.ID, 2)
		}()
		go func() {
			defer wg.Done()
			_ = ratings.Upsert(ctx, rater.ID, store.ID, 5)
		}()
	}
	wg.Wait()

	count, err := ratings.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "exactly one row per (user, store), never two")

	rows, err := ratings.ListForUser(ctx, rater.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, []int{2, 5}, rows[0].Rating, "last committed value wins")
}

func TestUpsert_RejectsMissingParents(t *testing.T) {
	ctx := context.Background()
	db := NewDB()

	err := db.Ratings().Upsert(ctx, 1, 1, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

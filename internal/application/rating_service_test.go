package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	"github.com/ratehub/store-rating-api/internal/infrastructure/memory"
)

// seedWorld creates an owner with two stores and one plain user.
func seedWorld(t *testing.T) (db *memory.DB, owner, user *entity.User, s1, s2 *entity.Store) {
	t.Helper()
	ctx := context.Background()
	db = memory.NewDB()

	owner = &entity.User{Name: "Owner Of Two Little Stores", Email: "owner@example.com", Role: entity.RoleStoreOwner}
	require.NoError(t, db.Users().Create(ctx, owner))
	user = &entity.User{Name: "Rating Customer Remy Fields", Email: "remy@example.com", Role: entity.RoleUser}
	require.NoError(t, db.Users().Create(ctx, user))

	s1 = &entity.Store{Name: "First Corner Store", Email: "s1@example.com", Address: "1 First St", OwnerID: owner.ID}
	require.NoError(t, db.Stores().Create(ctx, s1))
	s2 = &entity.Store{Name: "Second Corner Store", Email: "s2@example.com", Address: "2 Second St", OwnerID: owner.ID}
	require.NoError(t, db.Stores().Create(ctx, s2))
	return db, owner, user, s1, s2
}

func TestRatingService_ResubmitOverwrites(t *testing.T) {
	db, _, user, s1, _ := seedWorld(t)
	svc := NewRatingService(db.Ratings(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user.ID, s1.ID, 3))
	require.NoError(t, svc.Submit(ctx, user.ID, s1.ID, 5))

	ratings, err := svc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1, "resubmission must overwrite, not duplicate")
	assert.Equal(t, s1.ID, ratings[0].StoreID)
	assert.Equal(t, 5, ratings[0].Rating)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRatingService_OwnerRollupKeepsUnratedStores(t *testing.T) {
	db, owner, user, s1, s2 := seedWorld(t)
	svc := NewRatingService(db.Ratings(), nil)
	ctx := context.Background()

	second := &entity.User{Name: "Second Customer Avery Lane", Email: "avery@example.com", Role: entity.RoleUser}
	require.NoError(t, db.Users().Create(ctx, second))

	require.NoError(t, svc.Submit(ctx, user.ID, s1.ID, 4))
	require.NoError(t, svc.Submit(ctx, second.ID, s1.ID, 5))

	rollups, err := svc.OwnerRollup(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, rollups, 2, "unrated store must still appear")

	assert.Equal(t, s1.Name, rollups[0].StoreName)
	require.NotNil(t, rollups[0].AvgRating)
	assert.InDelta(t, 4.5, *rollups[0].AvgRating, 1e-9)
	assert.Equal(t, int64(2), rollups[0].TotalRatings)

	assert.Equal(t, s2.Name, rollups[1].StoreName)
	assert.Nil(t, rollups[1].AvgRating, "zero-rated store reports null average")
	assert.Equal(t, int64(0), rollups[1].TotalRatings)
}

func TestRatingService_RatersForOwner(t *testing.T) {
	db, owner, user, s1, _ := seedWorld(t)
	svc := NewRatingService(db.Ratings(), nil)
	ctx := context.Background()

	second := &entity.User{Name: "Second Customer Avery Lane", Email: "avery@example.com", Role: entity.RoleUser}
	require.NoError(t, db.Users().Create(ctx, second))

	require.NoError(t, svc.Submit(ctx, user.ID, s1.ID, 2))
	require.NoError(t, svc.Submit(ctx, second.ID, s1.ID, 5))

	raters, err := svc.RatersForOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, raters, 2, "one row per rating, not aggregated")

	emails := []string{raters[0].UserEmail, raters[1].UserEmail}
	assert.ElementsMatch(t, []string{user.Email, second.Email}, emails)
}

func TestRatingService_CountIsGlobal(t *testing.T) {
	db, _, user, s1, s2 := seedWorld(t)
	svc := NewRatingService(db.Ratings(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user.ID, s1.ID, 1))
	require.NoError(t, svc.Submit(ctx, user.ID, s2.ID, 5))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

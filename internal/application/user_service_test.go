package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	"github.com/ratehub/store-rating-api/internal/infrastructure/memory"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

func TestUserService_CreateWithExplicitRole(t *testing.T) {
	db := memory.NewDB()
	svc := NewUserService(db.Users(), nil)
	ctx := context.Background()

	err := svc.Create(ctx, "Store Owner Henrietta Oakes", "henrietta@example.com", "Owner!pw12", "5 Elm St", entity.RoleStoreOwner)
	require.NoError(t, err)

	u, err := db.Users().GetByEmail(ctx, "henrietta@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, u.Role)
}

func TestUserService_ListOmitsPasswordHash(t *testing.T) {
	db := memory.NewDB()
	svc := NewUserService(db.Users(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "Administrator Octavia Blythe", "octavia@example.com", "Admin!pw12", "", entity.RoleAdmin))
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, svc.Create(ctx, "Regular Customer Number "+email, email, "User!pw123", "", entity.RoleUser))
	}

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	db := memory.NewDB()
	svc := NewUserService(db.Users(), nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "Regular Customer Casey Brook", "casey@example.com", "Old!passw1", "", entity.RoleUser))
	u, err := db.Users().GetByEmail(ctx, "casey@example.com")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, u.ID, "not-the-password", "New!passw1")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("vanished user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, 9999, "Old!passw1", "New!passw1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("success replaces hash", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, u.ID, "Old!passw1", "New!passw1"))
		updated, err := db.Users().GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, helpers.CompareHashAndPassword(updated.PasswordHash, "New!passw1"))
		assert.False(t, helpers.CompareHashAndPassword(updated.PasswordHash, "Old!passw1"))
	})
}

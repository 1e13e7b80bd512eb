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

func newAuthService(t *testing.T) (*AuthService, *memory.DB) {
	t.Helper()
	db := memory.NewDB()
	tokens := &helpers.TokenManager{Secret: []byte("test-secret")}
	return NewAuthService(db.Users(), tokens, nil), db
}

func TestAuthService_RegisterFixesRoleToUser(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	err := svc.Register(ctx, "Jordan Emerson Whitfield III", "jordan@example.com", "Secret!pw1", "12 Main St")
	require.NoError(t, err)

	u, err := db.Users().GetByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "Secret!pw1", u.PasswordHash, "password must be stored hashed")
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "Secret!pw1"))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Jordan Emerson Whitfield III", "dup@example.com", "Secret!pw1", ""))
	err := svc.Register(ctx, "Morgan Alexander Pennington", "dup@example.com", "Secret!pw2", "")
	assert.Error(t, err)
}

func TestAuthService_LoginMintsVerifiableToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Jordan Emerson Whitfield III", "jordan@example.com", "Secret!pw1", ""))

	res, err := svc.Login(ctx, "jordan@example.com", "Secret!pw1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, res.Role)

	claims, err := svc.Tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.NotZero(t, claims.UserID)
}

func TestAuthService_LoginRejections(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Jordan Emerson Whitfield III", "jordan@example.com", "Secret!pw1", ""))

	_, err := svc.Login(ctx, "jordan@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "Secret!pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	repo "github.com/ratehub/store-rating-api/internal/domain/repository"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

var ErrWrongPassword = errors.New("incorrect current password")

// UserService covers the admin-style user operations plus self-service
// password updates.
type UserService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

// List returns every user; the password hash never leaves the repository
// projection.
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

// Create inserts a user with an explicit role.
func (s *UserService) Create(ctx context.Context, name, email, password, address, role string) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         role,
	}
	return s.Users.Create(ctx, u)
}

// UpdatePassword re-verifies the current password before replacing the hash.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("password update failed")
		}
		return err
	}
	return nil
}

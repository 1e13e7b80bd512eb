package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	repo "github.com/ratehub/store-rating-api/internal/domain/repository"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles self-registration and credential verification.
// Tokens carry the full identity assertion; no session is stored.
type AuthService struct {
	Users  repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Logger: logger}
}

// Register creates a user with the role fixed to "user". Admin-created
// accounts with explicit roles go through UserService.Create instead.
func (s *AuthService) Register(ctx context.Context, name, email, password, address string) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         entity.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("register failed")
		}
		return err
	}
	return nil
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login verifies the credentials and mints a signed token binding the
// user id and role. Unknown email and wrong password collapse into one
// indistinguishable rejection.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.Tokens.Generate(u.ID, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, Role: u.Role}, nil
}

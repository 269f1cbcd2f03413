package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rngenius/rngenius-go/internal/apperr"
	"github.com/rngenius/rngenius-go/internal/crypto"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/rngenius/rngenius-go/internal/repository"
	"github.com/rngenius/rngenius-go/internal/validation"
)

// UserService handles user account business logic: registration, login,
// refresh-token rotation and password changes.
type UserService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// AddUser validates and registers a new user account. The password is
// checked against the policy and stored as a bcrypt hash.
func (s *UserService) AddUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return apperr.Validation("user", "User data is required")
	}
	if err := validation.ValidateUser(user); err != nil {
		return err
	}
	if err := validation.ValidatePassword(user.Password); err != nil {
		return err
	}

	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return apperr.Validation("user", "User with this email already exists")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := crypto.HashSecret(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := s.repo.Create(ctx, user); err != nil {
		// Uniqueness is also enforced by the database; a concurrent signup
		// surfaces here instead of in the lookup above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperr.Validation("user", "User with this email already exists")
		}
		return err
	}

	return nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user", "No user with this email")
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user", "No user with this id")
		}
		return nil, err
	}
	return user, nil
}

// SetRefreshTokenOnLogin generates an opaque refresh token for the user,
// persists its hash and returns the raw token for the client.
func (s *UserService) SetRefreshTokenOnLogin(ctx context.Context, user *model.User) (string, error) {
	token := uuid.NewString()

	hash, err := crypto.HashSecret(token)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, hash); err != nil {
		return "", err
	}
	user.RefreshToken = hash

	return token, nil
}

// CheckRefreshToken verifies a presented refresh token against the stored
// hash and returns the user on success.
func (s *UserService) CheckRefreshToken(ctx context.Context, userID int64, presented string) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.RefreshToken == "" || !crypto.VerifySecret(presented, user.RefreshToken) {
		return nil, apperr.Authentication("user", "Invalid refresh token")
	}

	return user, nil
}

// ChangePassword replaces the user's password after verifying the old one
// and validating the new one against the policy.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.VerifySecret(oldPassword, user.Password) {
		return apperr.Validation("user", "Invalid password")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := crypto.HashSecret(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}

// Login authenticates a user by email and password, rotates the refresh
// token and issues an access token.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}

	if !crypto.VerifySecret(req.Password, user.Password) {
		return model.AuthResponse{}, apperr.Authentication("user", "Invalid password")
	}

	refreshToken, err := s.SetRefreshTokenOnLogin(ctx, user)
	if err != nil {
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

// Refresh issues a new access token after verifying the presented refresh
// token.
func (s *UserService) Refresh(ctx context.Context, req model.RefreshRequest) (model.TokenResponse, error) {
	user, err := s.CheckRefreshToken(ctx, req.ID, req.RefreshToken)
	if err != nil {
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}

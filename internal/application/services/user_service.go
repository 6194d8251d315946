package services

import (
	"context"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/auth"
	"github.com/ldanie38/geniuscrm/pkg/errors"
)

// UserService exposes read-only user listings and operator account setup
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// CreateOperator creates an account from the command line. Unlike
// registration it may grant staff status and may leave the password unusable.
func (s *UserService) CreateOperator(ctx context.Context, username, email, password string, staff bool) (*models.User, error) {
	if username == "" {
		return nil, errors.NewValidationError("username", "This field is required.")
	}
	if email != "" && !auth.IsValidEmail(email) {
		return nil, errors.NewValidationError("email", "Enter a valid email address.")
	}

	user := &models.User{Username: username, Email: email, IsActive: true, IsStaff: staff}
	if password != "" {
		if err := auth.ValidatePassword(password, username, email); err != nil {
			return nil, errors.NewValidationError("password", err.Error())
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStaff grants or revokes staff status on an existing account
func (s *UserService) SetStaff(ctx context.Context, username string, staff bool) (*models.User, error) {
	if username == "" {
		return nil, errors.NewValidationError("username", "This field is required.")
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetStaff(ctx, user.ID, staff); err != nil {
		return nil, err
	}
	user.IsStaff = staff
	return user, nil
}

package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/auth"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/utils"
	"go.uber.org/zap"
)

const (
	msgNoActiveAccount   = "No active account found with the given credentials"
	passwordResetSubject = "Reset your Genius Messenger CRM password"
)

// AuthService handles registration, token issuance and password operations
type AuthService struct {
	users     ports.UserRepository
	tokens    *auth.TokenIssuer
	resets    *auth.ResetTokens
	mailer    ports.Mailer
	fromEmail string
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(users ports.UserRepository, tokens *auth.TokenIssuer, resets *auth.ResetTokens,
	mailer ports.Mailer, fromEmail string, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:     users,
		tokens:    tokens,
		resets:    resets,
		mailer:    mailer,
		fromEmail: fromEmail,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates an active, non-staff account
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" {
		return nil, errors.NewValidationError("username", "This field is required.")
	}
	if len(username) > constants.UsernameMaxLength {
		return nil, errors.NewValidationError("username", "Ensure this field has no more than 150 characters.")
	}
	if email != "" && !auth.IsValidEmail(email) {
		return nil, errors.NewValidationError("email", "Enter a valid email address.")
	}
	if err := auth.ValidatePassword(req.Password, username, email); err != nil {
		return nil, errors.NewValidationError("password", err.Error())
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("User", "username", username)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", username))
	return user, nil
}

// Login verifies credentials and issues an access/refresh pair
func (s *AuthService) Login(ctx context.Context, username, password string) (*auth.TokenPair, *models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Warn("login failed: unknown user", zap.String("username", username))
			return nil, nil, errors.NewUnauthorizedError(msgNoActiveAccount)
		}
		return nil, nil, err
	}

	if !user.IsActive || !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn("login failed: bad credentials", zap.String("username", username))
		return nil, nil, errors.NewUnauthorizedError(msgNoActiveAccount)
	}

	pair, err := s.tokens.IssuePair(user.Session())
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to issue tokens", err)
	}

	now := s.now().UTC().Truncate(time.Second)
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to record last login", zap.Int64("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	s.logger.Info("user logged in", zap.Int64("user_id", user.ID))
	return pair, user, nil
}

// Refresh exchanges a refresh token for a new access token. The account must
// still exist and be active.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	access, claims, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return "", errors.NewUnauthorizedError("Token is invalid or expired")
	}

	user, err := s.users.GetByID(ctx, claims.User.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.NewUnauthorizedError("User not found")
		}
		return "", err
	}
	if !user.IsActive {
		return "", errors.NewUnauthorizedError("User is inactive")
	}
	return access, nil
}

// Authenticate resolves a bearer access token to an active user
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := s.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Given token not valid for any token type")
	}

	user, err := s.users.GetByID(ctx, claims.User.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewUnauthorizedError("User not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.NewUnauthorizedError("User is inactive")
	}
	return user, nil
}

// ForgotPassword emails a reset link when the address belongs to an account
// with a usable password. It never reports whether that was the case.
func (s *AuthService) ForgotPassword(ctx context.Context, email, baseURL string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return
	}

	users, err := s.users.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("password forgot lookup failed", zap.Error(err))
		return
	}
	var user *models.User
	for _, u := range users {
		if u.HasUsablePassword() {
			user = u
			break
		}
	}
	if user == nil {
		return
	}

	token, err := s.resets.Make(user.ResetSubject())
	if err != nil {
		s.logger.Error("failed to create reset token", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}

	link := ResetLink(baseURL, utils.EncodeUID(user.ID), token)
	body := "You (or someone else) requested a password reset.\n\n" +
		fmt.Sprintf("Use this link (valid for ~1 hour):\n%s\n\n", link) +
		"If you didn't request this, you can ignore this email."

	msg := ports.Email{From: s.fromEmail, To: email, Subject: passwordResetSubject, Body: body}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send reset email", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}
	s.logger.Info("password reset email sent", zap.Int64("user_id", user.ID))
}

// ResetLink builds <baseURL>/reset-password?uid=..&token=..
func ResetLink(baseURL, uid, token string) string {
	q := url.Values{}
	q.Set("uid", uid)
	q.Set("token", token)
	return strings.TrimRight(baseURL, "/") + "/reset-password?" + q.Encode()
}

// ResetPassword sets a new password when uid and token are valid. Every
// failure yields false without detail.
func (s *AuthService) ResetPassword(ctx context.Context, uid, token, newPassword string) bool {
	uid, token, newPassword = strings.TrimSpace(uid), strings.TrimSpace(token), strings.TrimSpace(newPassword)
	if uid == "" || token == "" || newPassword == "" {
		return false
	}

	id, err := utils.DecodeUID(uid)
	if err != nil {
		return false
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.Error("password reset lookup failed", zap.Error(err))
		}
		return false
	}

	if !s.resets.Check(user.ResetSubject(), token) {
		return false
	}
	if err := auth.ValidatePassword(newPassword, user.Username, user.Email); err != nil {
		return false
	}

	return s.setPassword(ctx, user, newPassword)
}

// ChangePassword replaces the password of an authenticated user after
// checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, current, newPassword string) bool {
	current, newPassword = strings.TrimSpace(current), strings.TrimSpace(newPassword)
	if user == nil || current == "" || newPassword == "" {
		return false
	}
	if !auth.VerifyPassword(current, user.PasswordHash) {
		return false
	}
	if err := auth.ValidatePassword(newPassword, user.Username, user.Email); err != nil {
		return false
	}
	return s.setPassword(ctx, user, newPassword)
}

func (s *AuthService) setPassword(ctx context.Context, user *models.User, password string) bool {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return false
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("failed to store password", zap.Int64("user_id", user.ID), zap.Error(err))
		return false
	}
	user.PasswordHash = hash
	s.logger.Info("password changed", zap.Int64("user_id", user.ID))
	return true
}

// Logout is stateless: tokens simply expire
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}

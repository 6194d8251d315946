package models

import (
	"time"

	"github.com/ldanie38/geniuscrm/pkg/auth"
)

// User is a CRM account. The password hash is never serialized.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	IsActive     bool       `json:"is_active"`
	IsStaff      bool       `json:"is_staff"`
	DateJoined   time.Time  `json:"date_joined"`
	LastLogin    *time.Time `json:"last_login"`
	PasswordHash string     `json:"-"`
}

// HasUsablePassword is false for accounts created without a local password
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}

// Session returns the claims stored in the user's JWTs
func (u *User) Session() auth.UserSession {
	return auth.UserSession{ID: u.ID, Username: u.Username, IsStaff: u.IsStaff}
}

// ResetSubject returns the state a password reset token is bound to
func (u *User) ResetSubject() auth.ResetSubject {
	return auth.ResetSubject{UserID: u.ID, PasswordHash: u.PasswordHash, LastLogin: u.LastLogin}
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
}

// LoginRequest is the body of the token endpoints
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body of the refresh endpoints
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ForgotPasswordRequest is the body of POST /api/auth/password/forgot
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/password/reset
type ResetPasswordRequest struct {
	UID         string `json:"uid"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest is the body of POST /api/auth/password/change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

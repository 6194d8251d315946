package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
)

const (
	msgInvalidResetToken     = "Invalid or expired token"
	msgInvalidPasswordChange = "Invalid password change request"
)

type AuthHandler struct {
	svc   AuthService
	links LinkBase
}

func NewAuthHandler(svc AuthService, links LinkBase) *AuthHandler {
	return &AuthHandler{svc: svc, links: links}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		constants.FieldID:       user.ID,
		constants.FieldUsername: user.Username,
		constants.FieldEmail:    user.Email,
	})
}

// Login handles POST /api/auth/login and /api/v1/auth/token
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	pair, _, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh handles POST /api/auth/refresh and /api/v1/auth/token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if !BindJSON(c, &req) {
		return
	}

	access, err := h.svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// ForgotPassword handles POST /api/auth/password/forgot. The answer is the
// same whether or not the address is known. Requests for an untrusted host
// send nothing.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	_ = c.ShouldBindJSON(&req)

	if base, ok := h.links.Resolve(c); ok {
		h.svc.ForgotPassword(c.Request.Context(), req.Email, base)
	}
	c.JSON(http.StatusOK, gin.H{constants.ResponseOK: true})
}

// ResetPassword handles POST /api/auth/password/reset
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	_ = c.ShouldBindJSON(&req)

	if !h.svc.ResetPassword(c.Request.Context(), req.UID, req.Token, req.NewPassword) {
		c.JSON(http.StatusOK, gin.H{constants.ResponseOK: false, constants.ResponseError: msgInvalidResetToken})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.ResponseOK: true})
}

// ChangePassword handles POST /api/auth/password/change
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	_ = c.ShouldBindJSON(&req)

	if !h.svc.ChangePassword(c.Request.Context(), GetUserFromContext(c), req.CurrentPassword, req.NewPassword) {
		c.JSON(http.StatusOK, gin.H{constants.ResponseOK: false, constants.ResponseError: msgInvalidPasswordChange})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.ResponseOK: true})
}

// Logout handles POST /api/auth/logout. Tokens are not tracked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.ResponseOK: true})
}

package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
)

// Authenticator resolves a bearer access token to a user
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// RequireAuth is a middleware that validates JWT access tokens
func RequireAuth(authSvc Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			abortWith(c, errors.NewUnauthorizedError("Authentication credentials were not provided."))
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != strings.TrimSpace(constants.BearerPrefix) || parts[1] == "" {
			abortWith(c, errors.NewUnauthorizedError("Invalid authorization header format"))
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyToken, parts[1])
		c.Next()
	}
}

// RequireStaff allows only staff users through. It must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWith(c, errors.NewUnauthorizedError("Authentication credentials were not provided."))
			return
		}
		if !user.IsStaff {
			abortWith(c, errors.NewPermissionError("access", "this resource"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

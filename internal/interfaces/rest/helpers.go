package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/interfaces/middleware"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/validator"
)

// GetUserFromContext extracts the authenticated user from gin.Context
func GetUserFromContext(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

// RespondAppError hands the error to the error middleware and stops the chain
func RespondAppError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// BindJSON binds JSON and returns true if successful. On failure the
// validation error is attached to the context.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondAppError(c, errors.NewFieldsValidationError(validator.FieldErrors(err)))
		return false
	}
	return true
}

// ParamID parses the :id path parameter
func ParamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondAppError(c, errors.NewNotFoundError("Resource", c.Param("id")))
		return 0, false
	}
	return id, true
}

// isPartial reports whether the request is a PATCH
func isPartial(c *gin.Context) bool {
	return c.Request.Method == http.MethodPatch
}

// HandleGet executes a read action and writes its result
func HandleGet(c *gin.Context, action func() (interface{}, error)) {
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleCreate binds the body into in, runs the action and answers 201
func HandleCreate(c *gin.Context, in interface{}, action func() (interface{}, error)) {
	if !BindJSON(c, in) {
		return
	}
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleUpdate binds the body into in, runs the action and answers 200
func HandleUpdate(c *gin.Context, in interface{}, action func() (interface{}, error)) {
	if !BindJSON(c, in) {
		return
	}
	HandleGet(c, action)
}

// HandleDelete runs the action and answers 204
func HandleDelete(c *gin.Context, action func() error) {
	if err := action(); err != nil {
		RespondAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

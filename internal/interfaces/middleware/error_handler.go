package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached with c.Error, and recovers
// panics into a generic 500. Nothing is written if the handler already
// produced a response.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Unhandled error",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, unexpectedBody())
				}
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := ErrorResponse(err)
		logError(logger, c, status, err)
		c.JSON(status, body)
	}
}

// ErrorResponse maps an error to its HTTP status and JSON body
func ErrorResponse(err error) (int, gin.H) {
	code := errors.GetErrorCode(err)

	switch e := unwrapApp(err).(type) {
	case *errors.ValidationError:
		var details interface{} = e.Message
		switch {
		case len(e.Fields) > 0:
			fields := gin.H{}
			for name, msg := range e.Fields {
				fields[name] = []string{msg}
			}
			details = fields
		case e.Field != "":
			details = gin.H{e.Field: []string{e.Message}}
		}
		return http.StatusBadRequest, gin.H{
			constants.ResponseError:   "Validation failed",
			constants.ResponseDetails: details,
			constants.ResponseCode:    code,
		}
	case *errors.DatabaseError:
		return http.StatusInternalServerError, gin.H{
			constants.ResponseError: "Database error occurred",
			constants.ResponseCode:  code,
		}
	case *errors.PermissionError:
		return http.StatusForbidden, gin.H{
			constants.ResponseError:   "Authentication/Authorization failed",
			constants.ResponseDetails: e.Error(),
			constants.ResponseCode:    code,
		}
	case *errors.UnauthorizedError:
		return http.StatusUnauthorized, gin.H{
			constants.ResponseDetail: e.Reason,
			constants.ResponseCode:   code,
		}
	case *errors.NotFoundError:
		return http.StatusNotFound, gin.H{
			constants.ResponseDetail: e.Error(),
			constants.ResponseCode:   code,
		}
	case *errors.ConflictError:
		return http.StatusConflict, gin.H{
			constants.ResponseError:   "Conflict",
			constants.ResponseDetails: e.Error(),
			constants.ResponseCode:    code,
		}
	case *errors.ThrottledError:
		return http.StatusTooManyRequests, gin.H{
			constants.ResponseDetail: e.Error(),
			constants.ResponseCode:   code,
		}
	}
	return http.StatusInternalServerError, unexpectedBody()
}

func unexpectedBody() gin.H {
	return gin.H{
		constants.ResponseError: "An unexpected error occurred",
		constants.ResponseCode:  "INTERNAL_ERROR",
	}
}

// unwrapApp returns the first AppError in err's chain, or err itself
func unwrapApp(err error) error {
	var appErr errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return err
}

func logError(logger *zap.Logger, c *gin.Context, status int, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}
	switch {
	case errors.IsValidation(err):
		logger.Error(fmt.Sprintf("Validation error: %v", err), fields...)
	case errors.IsDatabase(err):
		logger.Error(fmt.Sprintf("Database error: %v", err), fields...)
	case errors.IsPermission(err):
		logger.Warn(fmt.Sprintf("Auth error: %v", err), fields...)
	case status >= http.StatusInternalServerError:
		logger.Error(fmt.Sprintf("Unhandled error: %v", err), fields...)
	default:
		logger.Debug("request failed", fields...)
	}
}

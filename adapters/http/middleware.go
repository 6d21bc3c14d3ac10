package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

const GinContextKeyRequestID = "requestID"

// RequestIDMiddleware assigns every request an id, honoring one supplied by
// the caller, and echoes it back in the response headers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorMiddleware drains errors queued by handlers via c.Error and writes
// the response. Client errors return the app error's message; anything
// internal is logged in full and answered with a generic body.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unclassified error", err)
		}

		status := apperror.ToHTTPStatus(err)
		requestID := c.GetString(GinContextKeyRequestID)

		if status >= http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("request_id", requestID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(status, gin.H{
				"error":   apperror.ErrInternal.Error(),
				"message": "An internal server error occurred",
			})
			return
		}

		log.Warn("request rejected",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.String("details", appErr.Details),
		)
		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
)

// PipelineAuthMiddleware guards the ingestion endpoints with the X-API-Key
// header. An empty configured key disables the endpoints entirely.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithAppError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithAppError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

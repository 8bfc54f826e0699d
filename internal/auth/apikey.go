package auth

import (
	"crypto/subtle"

	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the shared secret on identity provider webhooks
const APIKeyHeader = "X-API-KEY"

// RequireAPIKey rejects requests whose X-API-KEY does not match expected.
// The comparison runs in constant time.
func RequireAPIKey(expected string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(APIKeyHeader))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			logger.WithContext(c.Request.Context()).Warn("webhook rejected: invalid API key")
			abortUnauthorized(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

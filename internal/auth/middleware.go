package auth

import (
	"net/http"
	"strings"

	"control-plane-backend/internal/config"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalIDKey = "principal_id"

// PrincipalMiddleware resolves the calling principal before any handler runs
type PrincipalMiddleware struct {
	source   string
	header   string
	verifier *TokenVerifier
}

// NewPrincipalMiddleware creates the middleware for the configured principal source
func NewPrincipalMiddleware(cfg *config.Config) *PrincipalMiddleware {
	m := &PrincipalMiddleware{
		source: cfg.PrincipalSource,
		header: cfg.PrincipalHeader,
	}
	if cfg.PrincipalSource == config.PrincipalSourceJWT {
		m.verifier = NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	}
	return m
}

// RequirePrincipal rejects requests without a valid principal and stores the
// principal ID in the gin context and in the request's log fields
func (m *PrincipalMiddleware) RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var principalID uuid.UUID
		var err error
		if m.source == config.PrincipalSourceJWT {
			principalID, err = m.fromBearer(c)
		} else {
			principalID, err = m.fromHeader(c)
		}
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Warn("principal rejected")
			abortUnauthorized(c, err)
			return
		}

		c.Set(principalIDKey, principalID)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), map[string]interface{}{
			principalIDKey: principalID.String(),
		}))

		c.Next()
	}
}

func (m *PrincipalMiddleware) fromHeader(c *gin.Context) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(m.header))
	if raw == "" {
		return uuid.Nil, apperrors.ErrMissingPrincipal
	}
	principalID, err := uuid.Parse(raw)
	if err != nil || principalID == uuid.Nil {
		return uuid.Nil, apperrors.ErrInvalidPrincipal
	}
	return principalID, nil
}

func (m *PrincipalMiddleware) fromBearer(c *gin.Context) (uuid.UUID, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, apperrors.ErrMissingPrincipal
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return uuid.Nil, apperrors.ErrInvalidPrincipal
	}

	principalID, err := m.verifier.Verify(tokenString)
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Debug("bearer token rejected")
		return uuid.Nil, apperrors.ErrInvalidPrincipal
	}
	return principalID, nil
}

// GetPrincipalID extracts the principal resolved by RequirePrincipal
func GetPrincipalID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(principalIDKey)
	if !exists {
		return uuid.Nil, false
	}

	principalID, ok := value.(uuid.UUID)
	return principalID, ok
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": err.Error(),
	})
}

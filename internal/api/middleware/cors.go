package middleware

import (
	"net/http"

	"control-plane-backend/internal/auth"
	"control-plane-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS allows browser calls from the configured origins. A "*" entry allows any origin.
// The allowed request headers follow the configured principal header.
func CORS(cfg *config.Config) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: AllowedHeaders(cfg),
		ExposedHeaders: []string{RequestIDHeader},
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)

		// Preflights never reach the router
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

// AllowedHeaders lists the request headers browsers may send
func AllowedHeaders(cfg *config.Config) []string {
	headers := []string{"Origin", "Content-Type", "Authorization", auth.APIKeyHeader, RequestIDHeader}
	if cfg.PrincipalHeader != "" {
		headers = append(headers, cfg.PrincipalHeader)
	}
	return headers
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberia-cr/barberia-api/internal/config"
)

// CORSMiddleware ecoa a Origin apenas quando ela está na lista permitida
// do config. Lista vazia (desenvolvimento) aceita qualquer origem; em
// produção CORS_ALLOWED_ORIGINS deve listar os domínios do site, já que
// as respostas saem com Allow-Credentials.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORSAllowedOrigins))
	for _, o := range cfg.CORSAllowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && (len(allowed) == 0 || allowed[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			c.Writer.Header().Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS",
			)
		}

		// pre-flight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

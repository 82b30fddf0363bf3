package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barberia-cr/barberia-api/internal/config"
)

const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
	ContextAdminRole  = "adminRole"
)

// AuthMiddleware valida o token de sessão do admin. A sessão é um JWT
// assinado pelo servidor; nenhum flag setado pelo cliente é confiado.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		adminID, ok1 := claims["sub"].(string)
		email, ok2 := claims["email"].(string)
		role, _ := claims["role"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Set(ContextAdminEmail, email)
		c.Set(ContextAdminRole, role)

		c.Next()
	}
}

// ActorEmail devolve o e-mail do admin autenticado, para auditoria.
func ActorEmail(c *gin.Context) string {
	if v, ok := c.Get(ContextAdminEmail); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

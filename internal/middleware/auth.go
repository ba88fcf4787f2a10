package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopfront/api/internal/config"
	"shopfront/api/internal/models"
	"shopfront/api/internal/security"
)

// ClaimsKey is the gin context key holding the verified token claims.
const ClaimsKey = "auth_claims"

// Auth verifies the Bearer token. It is stateless: signature and expiry are
// the whole trust boundary, no session or user lookup happens here.
func Auth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, *claims)
		c.Next()
	}
}

// RequireAdmin gates a route group behind the admin role. Auth must run
// first so claims are present.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ClaimsKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
			return
		}

		claims, ok := claimsVal.(security.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims.Role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}

		c.Next()
	}
}

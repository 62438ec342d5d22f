package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cosmos-blog/internal/service/auth"
)

const userContextKey = "authUser"

// RequireAuth creates middleware that rejects requests without a valid
// bearer token. A missing token yields 401, a bad or expired one 403.
func RequireAuth(authService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token not provided"})
			return
		}

		claims, err := authService.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userContextKey, claims)
		c.Next()
	}
}

// UserFromContext returns the claims stored by RequireAuth.
func UserFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

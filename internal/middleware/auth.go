package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/jwt"
	"corpsite/internal/pkg/response"
)

// JWTAuth validates the Bearer token and stores user_id and role on the
// context for downstream handlers.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.CustomError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" || tokenStr == h {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid Authorization header")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pammu-27/sparsha-backend/internal/pkg/jwt"
	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
)

func AdminJWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if claims.Role != jwt.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}

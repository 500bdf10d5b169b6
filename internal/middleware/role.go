package middleware

import (
	"net/http"

	"clubadmin/internal/domain"
	"clubadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated admin carries the given role.
func RequireRole(requiredRole domain.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func SuperAdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperAdmin)
}

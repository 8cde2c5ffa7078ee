package middleware

import (
	"net/http"
	"strings"

	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the viewer holds one of roles.
// It must run after DashboardAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = true
	}
	return func(c *gin.Context) {
		viewer, ok := ViewerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Not authenticated"})
			return
		}
		if !allowed[strings.ToLower(viewer.Role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Message: "Forbidden",
				Details: "role " + viewer.Role + " cannot access this resource",
			})
			return
		}
		c.Next()
	}
}

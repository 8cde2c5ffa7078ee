package middleware

import (
	"context"
	"net/http"
	"strings"

	"shootdesk/cache"
	"shootdesk/models"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by DashboardAuthMiddleware.
const (
	TokenKey  = "authToken"
	ViewerKey = "viewer"
)

// ExtractToken returns the bearer token from the Authorization header, falling back
// to the authToken and token cookies.
func ExtractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); tok != "" {
			return tok
		}
	}
	for _, name := range []string{"authToken", "token"} {
		if tok, err := c.Cookie(name); err == nil && strings.TrimSpace(tok) != "" {
			return strings.TrimSpace(tok)
		}
	}
	return ""
}

// DashboardAuthMiddleware requires a readable token and stores it along with the
// decoded viewer in the context. Decoded viewers are cached by token hash.
func DashboardAuthMiddleware(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Missing authentication token"})
			return
		}

		decode := func(context.Context) (models.Viewer, error) {
			return utils.ViewerFromToken(tokenString)
		}
		var (
			viewer models.Viewer
			err    error
		)
		if store != nil {
			viewer, err = cache.GetOrRefresh(c.Request.Context(), store, utils.ViewerCachePrefix+utils.HashToken(tokenString), utils.ViewerCacheTTL, decode)
		} else {
			viewer, err = decode(c.Request.Context())
		}
		if err != nil {
			RequestLogger(c).Debug("Rejected dashboard token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid token", Details: err.Error()})
			return
		}

		c.Set(TokenKey, tokenString)
		c.Set(ViewerKey, viewer)
		c.Next()
	}
}

// TokenFrom returns the token stored by DashboardAuthMiddleware.
func TokenFrom(c *gin.Context) string {
	return c.GetString(TokenKey)
}

// ViewerFrom returns the viewer stored by DashboardAuthMiddleware.
func ViewerFrom(c *gin.Context) (models.Viewer, bool) {
	v, ok := c.Get(ViewerKey)
	if !ok {
		return models.Viewer{}, false
	}
	viewer, ok := v.(models.Viewer)
	return viewer, ok
}

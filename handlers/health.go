package handlers

import (
	"net/http"

	"shootdesk/middleware"
	"shootdesk/models"
	"shootdesk/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "checks": status.Checks, "checkedAt": status.CheckedAt})
}

// GeoHandler returns the caller's location as resolved by GeolocationMiddleware.
func GeoHandler(c *gin.Context) {
	location, ok := middleware.GeoLocationFrom(c)
	if !ok {
		location = models.GeoLocation{Country: "Unknown"}
	}
	c.JSON(http.StatusOK, location)
}

package middleware

import (
	"shootdesk/models"
	"shootdesk/services/geo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoLocationKey holds the caller's resolved location.
const GeoLocationKey = "geoLocation"

// GeolocationMiddleware resolves the client's IP to a location and sets it in the
// context. Lookups never abort the request.
func GeolocationMiddleware(locator geo.Locator) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		location := locator.Lookup(c.Request.Context(), clientIP)
		RequestLogger(c).Debug("GeolocationMiddleware: Geolocation determined",
			zap.String("ip", clientIP), zap.String("country", location.Country))
		c.Set(GeoLocationKey, location)
		c.Next()
	}
}

// GeoLocationFrom returns the location stored by GeolocationMiddleware.
func GeoLocationFrom(c *gin.Context) (models.GeoLocation, bool) {
	v, ok := c.Get(GeoLocationKey)
	if !ok {
		return models.GeoLocation{}, false
	}
	location, ok := v.(models.GeoLocation)
	return location, ok
}

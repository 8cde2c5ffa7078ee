package models

import "time"

// GeoLocation represents the geolocation information for an IP.
type GeoLocation struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Source      string  `json:"source"`
}

// Forecast is the cosmetic weather summary attached to a shoot card.
type Forecast struct {
	ShootID      string    `json:"shootId"`
	At           time.Time `json:"at"`
	TemperatureC float64   `json:"temperatureC"`
	PrecipChance int       `json:"precipChance"`
	WeatherCode  int       `json:"weatherCode"`
	Summary      string    `json:"summary"`
}

// TourVariants are the public virtual-tour page flavors.
var TourVariants = map[string]bool{
	"mls":     true,
	"branded": true,
	"g-mls":   true,
}

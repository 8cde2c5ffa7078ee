package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	LogFile           string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB      int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups     int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays     int    `mapstructure:"LOG_MAX_AGE_DAYS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`

	// Dashboard REST backend.
	BackendBaseURL        string `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeoutSeconds int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`

	// Cache configuration. CacheBackend is "redis" or "memory".
	CacheBackend       string `mapstructure:"CACHE_BACKEND"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	GeoCacheTTLMinutes int    `mapstructure:"GEO_CACHE_TTL_MINUTES"`

	// Third-party lookups.
	GeoPrimaryURL  string `mapstructure:"GEO_PRIMARY_URL"`
	GeoFallbackURL string `mapstructure:"GEO_FALLBACK_URL"`
	WeatherBaseURL string `mapstructure:"WEATHER_BASE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 100)
	viper.SetDefault("LOG_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 14)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GEO_CACHE_TTL_MINUTES", 1440)
	viper.SetDefault("GEO_PRIMARY_URL", "https://ipapi.co")
	viper.SetDefault("GEO_FALLBACK_URL", "http://ip-api.com")
	viper.SetDefault("WEATHER_BASE_URL", "https://api.open-meteo.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves the configured timezone, falling back to the process zone.
func Location() *time.Location {
	tz := strings.TrimSpace(AppConfig.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using local time", tz)
		return time.Local
	}
	return loc
}

// BackendTimeout returns the per-request timeout for backend calls.
func BackendTimeout() time.Duration {
	if AppConfig.BackendTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(AppConfig.BackendTimeoutSeconds) * time.Second
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(AppConfig.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"shootdesk/cache"
	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
)

// UnknownCountry is reported for private addresses and failed lookups.
const UnknownCountry = "Unknown"

type Locator interface {
	Lookup(ctx context.Context, ip string) models.GeoLocation
}

// ipapiResponse is the ipapi.co payload.
type ipapiResponse struct {
	IP          string  `json:"ip"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
}

// ipAPIResponse is the ip-api.com payload.
type ipAPIResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Query       string  `json:"query"`
	City        string  `json:"city"`
	Region      string  `json:"regionName"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
}

// DefaultLocator resolves IPs with ipapi.co, silently falling back to ip-api.com,
// and caches successful answers.
type DefaultLocator struct {
	PrimaryURL  string
	FallbackURL string
	Store       cache.Store
	TTL         time.Duration
	HTTP        *http.Client
}

func NewDefaultLocator(primaryURL, fallbackURL string, store cache.Store, ttl time.Duration) *DefaultLocator {
	return &DefaultLocator{
		PrimaryURL:  strings.TrimRight(primaryURL, "/"),
		FallbackURL: strings.TrimRight(fallbackURL, "/"),
		Store:       store,
		TTL:         ttl,
		HTTP:        &http.Client{Timeout: 5 * time.Second},
	}
}

// IsPrivateIP reports whether ip is private, loopback, link-local or unparseable.
func IsPrivateIP(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return true
	}
	return parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsUnspecified() ||
		parsed.IsLinkLocalUnicast() || parsed.IsLinkLocalMulticast()
}

func unknown(ip string) models.GeoLocation {
	return models.GeoLocation{IP: ip, Country: UnknownCountry}
}

// Lookup never fails; unresolvable addresses come back with the Unknown country.
func (l *DefaultLocator) Lookup(ctx context.Context, ip string) models.GeoLocation {
	logger := utils.GetLogger()
	if IsPrivateIP(ip) {
		logger.Debug("Client IP is private; using default geolocation", zap.String("ip", ip))
		return unknown(ip)
	}

	resolve := func(ctx context.Context) (models.GeoLocation, error) {
		geo, err := l.fromIPAPI(ctx, ip)
		if err == nil {
			return geo, nil
		}
		logger.Debug("Primary geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		geo, ferr := l.fromIPAPIcom(ctx, ip)
		if ferr != nil {
			return models.GeoLocation{}, fmt.Errorf("geolocation failed for %s: %v; fallback: %w", ip, err, ferr)
		}
		return geo, nil
	}

	var (
		geo models.GeoLocation
		err error
	)
	if l.Store != nil {
		geo, err = cache.GetOrRefresh(ctx, l.Store, utils.GeoCachePrefix+ip, l.TTL, resolve)
	} else {
		geo, err = resolve(ctx)
	}
	if err != nil {
		logger.Warn("Geolocation unavailable; defaulting to Unknown", zap.String("ip", ip), zap.Error(err))
		return unknown(ip)
	}
	return geo
}

func (l *DefaultLocator) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (l *DefaultLocator) fromIPAPI(ctx context.Context, ip string) (models.GeoLocation, error) {
	var r ipapiResponse
	if err := l.getJSON(ctx, fmt.Sprintf("%s/%s/json/", l.PrimaryURL, ip), &r); err != nil {
		return models.GeoLocation{}, err
	}
	if r.Error {
		return models.GeoLocation{}, fmt.Errorf("ipapi: %s", r.Reason)
	}
	if r.Country == "" {
		r.Country = UnknownCountry
	}
	return models.GeoLocation{
		IP: ip, City: r.City, Region: r.Region, Country: r.Country, CountryCode: r.CountryCode,
		Latitude: r.Latitude, Longitude: r.Longitude, Timezone: r.Timezone, Source: "ipapi.co",
	}, nil
}

func (l *DefaultLocator) fromIPAPIcom(ctx context.Context, ip string) (models.GeoLocation, error) {
	var r ipAPIResponse
	if err := l.getJSON(ctx, fmt.Sprintf("%s/json/%s", l.FallbackURL, ip), &r); err != nil {
		return models.GeoLocation{}, err
	}
	if r.Status != "success" {
		return models.GeoLocation{}, fmt.Errorf("ip-api: %s", r.Message)
	}
	if r.Country == "" {
		r.Country = UnknownCountry
	}
	return models.GeoLocation{
		IP: ip, City: r.City, Region: r.Region, Country: r.Country, CountryCode: r.CountryCode,
		Latitude: r.Lat, Longitude: r.Lon, Timezone: r.Timezone, Source: "ip-api.com",
	}, nil
}

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// HorizonDays is how far ahead Open-Meteo publishes hourly forecasts.
	HorizonDays = 16
	maxInFlight = 8
)

type WeatherService interface {
	Forecasts(ctx context.Context, shoots []models.ShootSummary, now time.Time) map[string]models.Forecast
}

// OpenMeteoService looks up hourly forecasts from Open-Meteo.
type OpenMeteoService struct {
	BaseURL string
	HTTP    *http.Client
}

func NewOpenMeteoService(baseURL string) *OpenMeteoService {
	return &OpenMeteoService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type forecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature   []float64 `json:"temperature_2m"`
		Precipitation []int     `json:"precipitation_probability"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"hourly"`
}

// Eligible reports whether a forecast can exist for the shoot at now.
func Eligible(s models.ShootSummary, now time.Time) bool {
	if s.StartTime == nil || s.Latitude == nil || s.Longitude == nil {
		return false
	}
	at := s.StartTime.UTC()
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return !at.Before(today) && at.Before(today.AddDate(0, 0, HorizonDays))
}

// Forecasts fetches a forecast per eligible shoot concurrently. Lookups that fail are
// left out of the result; the call itself never fails.
func (s *OpenMeteoService) Forecasts(ctx context.Context, shoots []models.ShootSummary, now time.Time) map[string]models.Forecast {
	out := make(map[string]models.Forecast)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for _, shoot := range shoots {
		if !Eligible(shoot, now) {
			continue
		}
		shoot := shoot
		g.Go(func() error {
			f, err := s.lookup(gctx, shoot)
			if err != nil {
				utils.GetLogger().Debug("weather lookup skipped", zap.String("shootID", shoot.ID), zap.Error(err))
				return nil
			}
			mu.Lock()
			out[shoot.ID] = f
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *OpenMeteoService) lookup(ctx context.Context, shoot models.ShootSummary) (models.Forecast, error) {
	at := shoot.StartTime.UTC().Truncate(time.Hour)
	day := at.Format("2006-01-02")
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(*shoot.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(*shoot.Longitude, 'f', 4, 64))
	q.Set("hourly", "temperature_2m,precipitation_probability,weather_code")
	q.Set("timezone", "UTC")
	q.Set("start_date", day)
	q.Set("end_date", day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return models.Forecast{}, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return models.Forecast{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.Forecast{}, fmt.Errorf("open-meteo status %d", resp.StatusCode)
	}
	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Forecast{}, err
	}

	want := at.Format("2006-01-02T15:04")
	h := body.Hourly
	for i, ts := range h.Time {
		if ts != want {
			continue
		}
		f := models.Forecast{ShootID: shoot.ID, At: at}
		if i < len(h.Temperature) {
			f.TemperatureC = h.Temperature[i]
		}
		if i < len(h.Precipitation) {
			f.PrecipChance = h.Precipitation[i]
		}
		if i < len(h.WeatherCode) {
			f.WeatherCode = h.WeatherCode[i]
		}
		f.Summary = Describe(f.WeatherCode)
		return f, nil
	}
	return models.Forecast{}, fmt.Errorf("no hourly entry for %s", want)
}

// Describe turns a WMO weather code into a short label.
func Describe(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Partly cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Showers"
	case code == 85 || code == 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	}
	return "Unknown"
}

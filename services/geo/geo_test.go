package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shootdesk/cache"

	"github.com/stretchr/testify/assert"
)

func TestIsPrivateIP(t *testing.T) {
	for _, ip := range []string{"10.1.2.3", "192.168.0.10", "172.16.5.4", "127.0.0.1", "::1", "", "nope"} {
		assert.True(t, IsPrivateIP(ip), ip)
	}
	assert.False(t, IsPrivateIP("8.8.8.8"))
}

func TestLookupPrivateIsUnknown(t *testing.T) {
	l := NewDefaultLocator("http://127.0.0.1:1", "http://127.0.0.1:1", nil, time.Hour)
	geo := l.Lookup(context.Background(), "192.168.1.1")
	assert.Equal(t, UnknownCountry, geo.Country)
}

func TestLookupPrimaryAndCache(t *testing.T) {
	var hits int32
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
		_, _ = w.Write([]byte(`{"ip":"8.8.8.8","city":"Mountain View","country_name":"United States","country_code":"US","latitude":37.4,"longitude":-122.1}`))
	}))
	defer primary.Close()

	l := NewDefaultLocator(primary.URL, "http://127.0.0.1:1", cache.NewMemoryStore(), time.Hour)
	for i := 0; i < 2; i++ {
		geo := l.Lookup(context.Background(), "8.8.8.8")
		assert.Equal(t, "United States", geo.Country)
		assert.Equal(t, "ipapi.co", geo.Source)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLookupFallsBack(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer primary.Close()
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/1.1.1.1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","country":"Australia","countryCode":"AU","city":"Sydney","lat":-33.8,"lon":151.2}`))
	}))
	defer fallback.Close()

	geo := NewDefaultLocator(primary.URL, fallback.URL, nil, time.Hour).Lookup(context.Background(), "1.1.1.1")
	assert.Equal(t, "Australia", geo.Country)
	assert.Equal(t, "ip-api.com", geo.Source)
	assert.InDelta(t, -33.8, geo.Latitude, 0.001)
}

func TestLookupBothFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()

	geo := NewDefaultLocator(down.URL, down.URL, cache.NewMemoryStore(), time.Hour).Lookup(context.Background(), "1.1.1.1")
	assert.Equal(t, UnknownCountry, geo.Country)
	assert.Equal(t, "1.1.1.1", geo.IP)
}

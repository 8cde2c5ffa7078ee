package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shootdesk/utils"

	"go.uber.org/zap"
)

// StaleRetention is how many TTLs an entry is retained after it stops being fresh,
// so a failed refresh can still serve the last known value.
const StaleRetention = 3

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache: miss")

// Entry is a cached value with its freshness window.
type Entry struct {
	Value    json.RawMessage `json:"value"`
	StoredAt time.Time       `json:"stored_at"`
	TTL      time.Duration   `json:"ttl"`
}

// Fresh reports whether the entry is still within its TTL at now.
func (e Entry) Fresh(now time.Time) bool {
	return now.Before(e.StoredAt.Add(e.TTL))
}

// Store persists cache entries. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, e Entry) error
	Delete(ctx context.Context, key string) error
}

// GetOrRefresh returns the cached value for key while it is fresh. Otherwise it calls
// refresh and stores the result. If refresh fails and a stale entry exists, the stale
// value is returned without an error.
func GetOrRefresh[T any](ctx context.Context, store Store, key string, ttl time.Duration, refresh func(context.Context) (T, error)) (T, error) {
	var zero T
	logger := utils.GetLogger()

	entry, err := store.Get(ctx, key)
	hasEntry := err == nil
	if err != nil && !errors.Is(err, ErrMiss) {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	var cached T
	if hasEntry {
		if uerr := json.Unmarshal(entry.Value, &cached); uerr != nil {
			logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(uerr))
			hasEntry = false
		} else if entry.Fresh(time.Now()) {
			return cached, nil
		}
	}

	value, err := refresh(ctx)
	if err != nil {
		if hasEntry {
			logger.Debug("refresh failed, serving stale entry", zap.String("key", key), zap.Error(err))
			return cached, nil
		}
		return zero, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, Entry{Value: raw, StoredAt: time.Now(), TTL: ttl}); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

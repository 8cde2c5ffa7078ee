package utils

import (
	"context"
	"sync"
	"time"
)

// HealthProbe checks one external dependency.
type HealthProbe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every probe passed on the last run.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Checks {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// RunHealthChecks runs every probe once and stores the snapshot.
func RunHealthChecks(ctx context.Context, probes []HealthProbe) HealthStatus {
	checks := make(map[string]bool, len(probes))
	for _, p := range probes {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		checks[p.Name] = p.Check(pctx) == nil
		cancel()
	}
	status := HealthStatus{Checks: checks, CheckedAt: time.Now()}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state
// until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, probes []HealthProbe) {
	RunHealthChecks(ctx, probes)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHealthChecks(ctx, probes)
			}
		}
	}()
}

package availability

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
)

// NextAvailabilityDays is how far past today the next-availability search looks.
const NextAvailabilityDays = 7

// Source is the slice of the backend client the availability service reads from.
type Source interface {
	PhotographerAvailability(ctx context.Context, token, photographerID string) ([]models.AvailabilitySlot, error)
	ListShoots(ctx context.Context, token string, q url.Values) ([]models.ShootSummary, error)
}

// AvailabilityService builds photographer timelines for the assignment modal.
type AvailabilityService interface {
	Timeline(ctx context.Context, token, photographerID string, date, now time.Time) ([]models.TimelineSlot, error)
	Next(ctx context.Context, token, photographerID string, now time.Time) (*models.NextAvailable, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Backend Source
}

// Timeline fetches the photographer's slots and assigned shoots and builds the
// hourly timeline for date.
func (s *DefaultAvailabilityService) Timeline(ctx context.Context, token, photographerID string, date, now time.Time) ([]models.TimelineSlot, error) {
	slots, err := s.Backend.PhotographerAvailability(ctx, token, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	assigned, err := s.Backend.ListShoots(ctx, token, url.Values{"photographer_id": {photographerID}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned shoots: %w", err)
	}

	utils.GetLogger().Debug("building timeline",
		zap.String("photographerID", photographerID),
		zap.String("date", date.Format(dateLayout)),
		zap.Int("slots", len(slots)),
		zap.Int("assigned", len(assigned)))
	return BuildTimeline(date, photographerID, assigned, slots, now), nil
}

// Next returns the earliest available slot from today onward that no assigned
// shoot already occupies, or nil.
func (s *DefaultAvailabilityService) Next(ctx context.Context, token, photographerID string, now time.Time) (*models.NextAvailable, error) {
	slots, err := s.Backend.PhotographerAvailability(ctx, token, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	assigned, err := s.Backend.ListShoots(ctx, token, url.Values{"photographer_id": {photographerID}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned shoots: %w", err)
	}
	return NextAvailability(photographerID, slots, assigned, now, NextAvailabilityDays), nil
}

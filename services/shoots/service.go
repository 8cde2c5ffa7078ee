package shoots

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
)

// Backend is the slice of the backend client the shoot board uses.
type Backend interface {
	ListShoots(ctx context.Context, token string, q url.Values) ([]models.ShootSummary, error)
	GetShoot(ctx context.Context, token, id string) (models.ShootSummary, error)
	PatchShoot(ctx context.Context, token, id string, patch models.ShootPatch) error
}

// MutationResult acknowledges a forwarded mutation. Shoot is the refetched record;
// Refreshed is false when the mutation succeeded but the refetch did not.
type MutationResult struct {
	ShootID   string               `json:"shootId"`
	Shoot     *models.ShootSummary `json:"shoot,omitempty"`
	Refreshed bool                 `json:"refreshed"`
}

// ShootService serves the dashboard shoot board and forwards shoot mutations.
type ShootService interface {
	List(ctx context.Context, token string) ([]models.ShootSummary, error)
	Board(ctx context.Context, token string, f models.FiltersState, opts GroupOptions, now time.Time) (models.GroupedShoots, error)
	Assign(ctx context.Context, token, shootID, photographerID string) (MutationResult, error)
	Update(ctx context.Context, token, shootID string, patch models.ShootPatch) (MutationResult, error)
}

type DefaultShootService struct {
	Backend Backend
}

func (s *DefaultShootService) List(ctx context.Context, token string) ([]models.ShootSummary, error) {
	list, err := s.Backend.ListShoots(ctx, token, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shoots: %w", err)
	}
	return list, nil
}

func (s *DefaultShootService) Board(ctx context.Context, token string, f models.FiltersState, opts GroupOptions, now time.Time) (models.GroupedShoots, error) {
	list, err := s.List(ctx, token)
	if err != nil {
		return models.GroupedShoots{}, err
	}
	return Board(list, f, now, opts), nil
}

// Assign sets the shoot's photographer then refetches the shoot.
func (s *DefaultShootService) Assign(ctx context.Context, token, shootID, photographerID string) (MutationResult, error) {
	if photographerID == "" {
		return MutationResult{}, fmt.Errorf("Assign: photographer id is required")
	}
	return s.Update(ctx, token, shootID, models.ShootPatch{PhotographerID: &photographerID})
}

// Update forwards a partial shoot update once, then refetches the shoot.
func (s *DefaultShootService) Update(ctx context.Context, token, shootID string, patch models.ShootPatch) (MutationResult, error) {
	if err := s.Backend.PatchShoot(ctx, token, shootID, patch); err != nil {
		return MutationResult{}, fmt.Errorf("failed to update shoot %s: %w", shootID, err)
	}
	res := MutationResult{ShootID: shootID}
	shoot, err := s.Backend.GetShoot(ctx, token, shootID)
	if err != nil {
		utils.GetLogger().Warn("Shoot updated but refetch failed", zap.String("shootID", shootID), zap.Error(err))
		return res, nil
	}
	res.Shoot = &shoot
	res.Refreshed = true
	return res, nil
}

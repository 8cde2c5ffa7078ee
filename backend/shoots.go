package backend

import (
	"context"
	"net/http"
	"net/url"

	"shootdesk/models"
)

// ShootAction is one of the approval endpoints under /api/shoots/{id}.
type ShootAction string

const (
	ApproveCancellation ShootAction = "approve-cancellation"
	RejectCancellation  ShootAction = "reject-cancellation"
	ApproveHold         ShootAction = "approve-hold"
	RejectHold          ShootAction = "reject-hold"
)

// ListShoots fetches shoot summaries; q is forwarded as the query string.
func (c *Client) ListShoots(ctx context.Context, token string, q url.Values) ([]models.ShootSummary, error) {
	data, err := c.doJSON(ctx, http.MethodGet, withQuery("/api/shoots", q), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ShootSummary](data)
}

// GetShoot fetches a single shoot.
func (c *Client) GetShoot(ctx context.Context, token, id string) (models.ShootSummary, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/shoots/"+url.PathEscape(id), token, nil)
	if err != nil {
		return models.ShootSummary{}, err
	}
	return decodeOne[models.ShootSummary](data)
}

// PatchShoot forwards an approve/decline/modify/assign mutation.
func (c *Client) PatchShoot(ctx context.Context, token, id string, patch models.ShootPatch) error {
	_, err := c.doJSON(ctx, http.MethodPatch, "/api/shoots/"+url.PathEscape(id), token, patch)
	return err
}

// ResolveShootRequest posts a cancellation or hold decision.
func (c *Client) ResolveShootRequest(ctx context.Context, token, id string, action ShootAction) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/shoots/"+url.PathEscape(id)+"/"+string(action), token, struct{}{})
	return err
}

// PhotographerAvailability lists one photographer's availability slots.
func (c *Client) PhotographerAvailability(ctx context.Context, token, photographerID string) ([]models.AvailabilitySlot, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/photographer/availability/"+url.PathEscape(photographerID), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.AvailabilitySlot](data)
}

// PublicTour fetches unauthenticated virtual-tour data for one variant.
func (c *Client) PublicTour(ctx context.Context, id, variant string) ([]byte, error) {
	return c.doJSON(ctx, http.MethodGet, "/api/public/shoots/"+url.PathEscape(id)+"/"+url.PathEscape(variant), "", nil)
}

package backend

import (
	"context"
	"net/http"
	"net/url"

	"shootdesk/models"
)

// ListNotifications fetches the viewer's notifications.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/notifications", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Notification](data)
}

// ListClientRequests fetches freeform client notes for the issues card.
func (c *Client) ListClientRequests(ctx context.Context, token string) ([]models.ClientRequest, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/client-requests", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ClientRequest](data)
}

// ListEditingRequests fetches editing tickets.
func (c *Client) ListEditingRequests(ctx context.Context, token string) ([]models.EditingRequest, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/editing-requests", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.EditingRequest](data)
}

// UpdateEditingRequest forwards an editing ticket update.
func (c *Client) UpdateEditingRequest(ctx context.Context, token, id string, patch models.EditingRequestPatch) (models.EditingRequest, error) {
	data, err := c.doJSON(ctx, http.MethodPatch, "/api/editing-requests/"+url.PathEscape(id), token, patch)
	if err != nil {
		return models.EditingRequest{}, err
	}
	return decodeOne[models.EditingRequest](data)
}

// DeleteEditingRequest forwards an editing ticket deletion.
func (c *Client) DeleteEditingRequest(ctx context.Context, token, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/editing-requests/"+url.PathEscape(id), token, nil)
	return err
}

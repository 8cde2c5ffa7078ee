package backend

import (
	"context"
	"net/http"
	"net/url"

	"shootdesk/models"
)

// ListAccounts fetches users, optionally filtered by role.
func (c *Client) ListAccounts(ctx context.Context, token, role string) ([]models.Account, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", role)
	}
	data, err := c.doJSON(ctx, http.MethodGet, withQuery("/api/admin/users", q), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Account](data)
}

// GetAccount fetches one user.
func (c *Client) GetAccount(ctx context.Context, token, id string) (models.Account, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/admin/users/"+url.PathEscape(id), token, nil)
	if err != nil {
		return models.Account{}, err
	}
	return decodeOne[models.Account](data)
}

// CreateAccount posts a multipart account body.
func (c *Client) CreateAccount(ctx context.Context, token string, fields map[string]string) (models.Account, error) {
	data, err := c.doMultipart(ctx, http.MethodPost, "/api/admin/users", token, fields)
	if err != nil {
		return models.Account{}, err
	}
	return decodeOne[models.Account](data)
}

// UpdateAccount puts a multipart account body.
func (c *Client) UpdateAccount(ctx context.Context, token, id string, fields map[string]string) (models.Account, error) {
	data, err := c.doMultipart(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id), token, fields)
	if err != nil {
		return models.Account{}, err
	}
	return decodeOne[models.Account](data)
}

// ImportTemplate downloads the CSV bulk-import template.
func (c *Client) ImportTemplate(ctx context.Context, token string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/import/accounts/template", token, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "text/csv")
	data, header, err := c.send(req)
	if err != nil {
		return nil, "", err
	}
	ct := header.Get("Content-Type")
	if ct == "" {
		ct = "text/csv"
	}
	return data, ct, nil
}

// UpdateProfile forwards a self-service profile edit.
func (c *Client) UpdateProfile(ctx context.Context, token string, body map[string]any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPut, "/api/profile", token, body)
}

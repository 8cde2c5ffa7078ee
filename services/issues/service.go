package issues

import (
	"context"
	"fmt"

	"shootdesk/models"
)

// Backend is the slice of the backend client used by the issues card and the
// editing request queue.
type Backend interface {
	ListClientRequests(ctx context.Context, token string) ([]models.ClientRequest, error)
	ListEditingRequests(ctx context.Context, token string) ([]models.EditingRequest, error)
	UpdateEditingRequest(ctx context.Context, token, id string, patch models.EditingRequestPatch) (models.EditingRequest, error)
	DeleteEditingRequest(ctx context.Context, token, id string) error
}

type IssueService interface {
	Issues(ctx context.Context, token string) ([]models.DashboardIssueItem, error)
	EditingRequests(ctx context.Context, token string) ([]models.EditingRequest, error)
	UpdateEditingRequest(ctx context.Context, token, id string, patch models.EditingRequestPatch) (models.EditingRequest, error)
	DeleteEditingRequest(ctx context.Context, token, id string) error
}

type DefaultIssueService struct {
	Backend Backend
}

func (s *DefaultIssueService) Issues(ctx context.Context, token string) ([]models.DashboardIssueItem, error) {
	reqs, err := s.Backend.ListClientRequests(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("Issues: failed to fetch client requests: %w", err)
	}
	return ToIssueItems(reqs), nil
}

func (s *DefaultIssueService) EditingRequests(ctx context.Context, token string) ([]models.EditingRequest, error) {
	reqs, err := s.Backend.ListEditingRequests(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("EditingRequests: failed to fetch editing requests: %w", err)
	}
	return SortEditingRequests(reqs), nil
}

func (s *DefaultIssueService) UpdateEditingRequest(ctx context.Context, token, id string, patch models.EditingRequestPatch) (models.EditingRequest, error) {
	if patch.Priority == nil && patch.Status == nil && patch.Summary == nil {
		return models.EditingRequest{}, fmt.Errorf("UpdateEditingRequest: empty patch for %s", id)
	}
	return s.Backend.UpdateEditingRequest(ctx, token, id, patch)
}

func (s *DefaultIssueService) DeleteEditingRequest(ctx context.Context, token, id string) error {
	return s.Backend.DeleteEditingRequest(ctx, token, id)
}

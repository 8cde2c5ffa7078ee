package notification

import (
	"context"
	"fmt"
	"time"

	"shootdesk/backend"
	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
)

// Backend is the slice of the backend client the notification center needs.
type Backend interface {
	ListNotifications(ctx context.Context, token string) ([]models.Notification, error)
	ResolveShootRequest(ctx context.Context, token, id string, action backend.ShootAction) error
}

// NotificationService builds the notification center feed and resolves approvals.
type NotificationService interface {
	Feed(ctx context.Context, token string, now time.Time) (models.NotificationFeed, error)
	Resolve(ctx context.Context, token, shootID, approvalType string, approve bool) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Backend Backend
	Window  time.Duration
}

func NewDefaultNotificationService(b Backend) (*DefaultNotificationService, error) {
	if b == nil {
		return nil, fmt.Errorf("notification service initialization error: backend is nil")
	}
	return &DefaultNotificationService{Backend: b, Window: utils.RecentNotificationWindow}, nil
}

// Feed fetches notifications and splits them into recent and older.
func (s *DefaultNotificationService) Feed(ctx context.Context, token string, now time.Time) (models.NotificationFeed, error) {
	items, err := s.Backend.ListNotifications(ctx, token)
	if err != nil {
		return models.NotificationFeed{}, fmt.Errorf("Feed: failed to fetch notifications: %w", err)
	}
	window := s.Window
	if window <= 0 {
		window = utils.RecentNotificationWindow
	}
	return Partition(items, now, window), nil
}

// ActionFor maps an approval dialog decision to its backend endpoint.
func ActionFor(approvalType string, approve bool) (backend.ShootAction, error) {
	switch approvalType {
	case ApprovalCancellation:
		if approve {
			return backend.ApproveCancellation, nil
		}
		return backend.RejectCancellation, nil
	case ApprovalHold:
		if approve {
			return backend.ApproveHold, nil
		}
		return backend.RejectHold, nil
	}
	return "", fmt.Errorf("unknown approval type %q", approvalType)
}

// Resolve posts the approve or reject decision for a cancellation or hold request.
func (s *DefaultNotificationService) Resolve(ctx context.Context, token, shootID, approvalType string, approve bool) error {
	action, err := ActionFor(approvalType, approve)
	if err != nil {
		return err
	}
	if shootID == "" {
		return fmt.Errorf("Resolve: missing shoot id")
	}
	if err := s.Backend.ResolveShootRequest(ctx, token, shootID, action); err != nil {
		return fmt.Errorf("Resolve: %s failed for shoot %s: %w", action, shootID, err)
	}
	utils.GetLogger().Info("shoot request resolved", zap.String("shootID", shootID), zap.String("action", string(action)))
	return nil
}

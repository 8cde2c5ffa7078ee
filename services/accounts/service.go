package accounts

import (
	"context"
	"fmt"

	"shootdesk/models"
	"shootdesk/utils"

	"go.uber.org/zap"
)

// Backend is the slice of the backend client used for account management.
type Backend interface {
	ListAccounts(ctx context.Context, token, role string) ([]models.Account, error)
	GetAccount(ctx context.Context, token, id string) (models.Account, error)
	CreateAccount(ctx context.Context, token string, fields map[string]string) (models.Account, error)
	UpdateAccount(ctx context.Context, token, id string, fields map[string]string) (models.Account, error)
	ImportTemplate(ctx context.Context, token string) ([]byte, string, error)
	UpdateProfile(ctx context.Context, token string, body map[string]any) ([]byte, error)
}

// AccountService validates and forwards account form submissions.
type AccountService interface {
	Submit(ctx context.Context, token string, values models.AccountFormValues, viewer models.Viewer) (models.Account, error)
	CreatorCandidates(ctx context.Context, token string) ([]models.Account, error)
	ImportTemplate(ctx context.Context, token string) ([]byte, string, error)
	UpdateProfile(ctx context.Context, token string, body map[string]any) ([]byte, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Backend Backend
}

// Submit validates the form and issues a PUT for existing accounts or a POST for new ones.
func (s *DefaultAccountService) Submit(ctx context.Context, token string, values models.AccountFormValues, viewer models.Viewer) (models.Account, error) {
	logger := utils.GetLogger()
	if err := Validate(values); err != nil {
		return models.Account{}, err
	}

	if values.ID != "" {
		existing, err := s.Backend.GetAccount(ctx, token, values.ID)
		if err != nil {
			return models.Account{}, fmt.Errorf("failed to load account %s: %w", values.ID, err)
		}
		fields, err := BuildPayload(values, &existing, viewer, models.Creator{})
		if err != nil {
			return models.Account{}, err
		}
		logger.Info("updating account", zap.String("accountID", values.ID), zap.String("role", values.Role))
		return s.Backend.UpdateAccount(ctx, token, values.ID, fields)
	}

	var candidates []models.Account
	if viewer.Role == models.RoleSuperadmin && values.CreatedByID != "" && values.CreatedByID != viewer.ID {
		list, err := s.CreatorCandidates(ctx, token)
		if err != nil {
			return models.Account{}, err
		}
		candidates = list
	}
	creator := ResolveCreator(viewer, values.CreatedByID, candidates)

	fields, err := BuildPayload(values, nil, viewer, creator)
	if err != nil {
		return models.Account{}, err
	}
	logger.Info("creating account", zap.String("role", values.Role), zap.String("createdBy", creator.ID))
	return s.Backend.CreateAccount(ctx, token, fields)
}

// CreatorCandidates lists the admins and sales reps a superadmin may record as creator.
func (s *DefaultAccountService) CreatorCandidates(ctx context.Context, token string) ([]models.Account, error) {
	seen := map[string]bool{}
	var out []models.Account
	for _, role := range []string{models.RoleAdmin, models.RoleSalesRep} {
		list, err := s.Backend.ListAccounts(ctx, token, role)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s accounts: %w", role, err)
		}
		for _, a := range list {
			if !seen[a.ID] {
				seen[a.ID] = true
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// ImportTemplate downloads the CSV template for bulk account import.
func (s *DefaultAccountService) ImportTemplate(ctx context.Context, token string) ([]byte, string, error) {
	return s.Backend.ImportTemplate(ctx, token)
}

// UpdateProfile forwards a self-service profile edit.
func (s *DefaultAccountService) UpdateProfile(ctx context.Context, token string, body map[string]any) ([]byte, error) {
	return s.Backend.UpdateProfile(ctx, token, body)
}

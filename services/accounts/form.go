package accounts

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode"

	"shootdesk/models"
)

// CanEditRepFinancials gates commission and home-address edits to superadmins.
func CanEditRepFinancials(viewer models.Viewer) bool {
	return viewer.Role == models.RoleSuperadmin
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildRepDetails assembles a sales rep's details. Commission and home address come
// from the form only when the viewer may edit them; otherwise the existing values
// are carried over unchanged.
func BuildRepDetails(v models.AccountFormValues, existing *models.RepDetails, viewer models.Viewer) *models.RepDetails {
	details := &models.RepDetails{
		PayoutEmail:     strings.TrimSpace(v.RepPayoutEmail),
		PayoutFrequency: strings.TrimSpace(v.RepPayoutFrequency),
		SalesCategories: v.RepSalesCategories,
	}

	if !CanEditRepFinancials(viewer) {
		if existing != nil {
			details.CommissionPercentage = existing.CommissionPercentage
			details.HomeAddress = existing.HomeAddress
		}
		return details
	}

	if rate, ok := ParseCommission(v.RepCommissionRate); ok {
		r := roundTo2(rate)
		details.CommissionPercentage = &r
	} else if existing != nil {
		details.CommissionPercentage = existing.CommissionPercentage
	}

	home := models.HomeAddress{
		Street:  strings.TrimSpace(v.RepHomeStreet),
		City:    strings.TrimSpace(v.RepHomeCity),
		State:   strings.TrimSpace(v.RepHomeState),
		Zipcode: strings.TrimSpace(v.RepHomeZipcode),
	}
	if !home.IsZero() {
		details.HomeAddress = &home
	}
	return details
}

// DeriveUsername uses the email local-part, falling back to the sanitized first and
// last name.
func DeriveUsername(v models.AccountFormValues) string {
	if local, _, ok := strings.Cut(strings.TrimSpace(v.Email), "@"); ok && local != "" {
		return strings.ToLower(local)
	}
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, v.FirstName+v.LastName)
	if name == "" {
		return "user"
	}
	return name
}

// ResolveCreator returns the created_by pair. A superadmin's explicit pick from the
// candidate list wins; everyone else records themselves.
func ResolveCreator(viewer models.Viewer, selectedID string, candidates []models.Account) models.Creator {
	self := models.Creator{ID: viewer.ID, Name: viewer.Name}
	if viewer.Role != models.RoleSuperadmin || selectedID == "" {
		return self
	}
	for _, c := range candidates {
		if c.ID == selectedID {
			return models.Creator{ID: c.ID, Name: c.DisplayName()}
		}
	}
	return self
}

// BuildPayload assembles the multipart fields for create (existing == nil) or update.
// creator is only used on create.
func BuildPayload(v models.AccountFormValues, existing *models.Account, viewer models.Viewer, creator models.Creator) (map[string]string, error) {
	first, last := strings.TrimSpace(v.FirstName), strings.TrimSpace(v.LastName)
	fields := map[string]string{
		"first_name": first,
		"last_name":  last,
		"name":       strings.TrimSpace(first + " " + last),
		"email":      strings.TrimSpace(v.Email),
		"role":       v.Role,
	}
	optional := map[string]string{
		"phone":          v.Phone,
		"company":        v.Company,
		"address":        v.Address,
		"city":           v.City,
		"state":          v.State,
		"zipcode":        v.Zipcode,
		"bio":            v.Bio,
		"license_number": v.LicenseNumber,
	}
	for k, val := range optional {
		if val = strings.TrimSpace(val); val != "" {
			fields[k] = val
		}
	}

	var meta models.AccountMetadata
	if existing != nil {
		meta = existing.Metadata
	}
	switch v.Role {
	case models.RoleSalesRep:
		meta.RepDetails = BuildRepDetails(v, meta.RepDetails, viewer)
	case models.RolePhotographer:
		if v.PilotLicenseFile != "" {
			meta.PilotLicenseFile = v.PilotLicenseFile
		}
		if v.InsuranceFile != "" {
			meta.InsuranceFile = v.InsuranceFile
		}
	}
	if meta.RepDetails != nil || meta.PilotLicenseFile != "" || meta.InsuranceFile != "" {
		b, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
		fields["metadata"] = string(b)
	}

	if existing == nil {
		fields["username"] = DeriveUsername(v)
		fields["created_by_id"] = creator.ID
		fields["created_by_name"] = creator.Name
	}
	return fields, nil
}

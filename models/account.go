package models

import "strings"

// Account roles accepted by the account form.
const (
	RoleAdmin        = "admin"
	RolePhotographer = "photographer"
	RoleClient       = "client"
	RoleEditor       = "editor"
	RoleSalesRep     = "salesRep"

	// RoleSuperadmin is a viewer role only; it gates rep financial edits.
	RoleSuperadmin = "superadmin"
)

// HomeAddress is a sales rep's home address.
type HomeAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// IsZero reports whether no address field is set.
func (h HomeAddress) IsZero() bool {
	return h == HomeAddress{}
}

// RepDetails are the sales-rep profile fields nested under a user's metadata.
type RepDetails struct {
	PayoutEmail          string       `json:"payoutEmail,omitempty"`
	PayoutFrequency      string       `json:"payoutFrequency,omitempty"`
	CommissionPercentage *float64     `json:"commissionPercentage,omitempty"`
	HomeAddress          *HomeAddress `json:"homeAddress,omitempty"`
	SalesCategories      []string     `json:"salesCategories,omitempty"`
}

// AccountMetadata is the role-specific metadata blob of a user.
type AccountMetadata struct {
	RepDetails       *RepDetails `json:"repDetails,omitempty"`
	PilotLicenseFile string      `json:"pilotLicenseFile,omitempty"`
	InsuranceFile    string      `json:"insuranceFile,omitempty"`
}

// AccountFormValues is the union of fields needed to create or update a user.
type AccountFormValues struct {
	ID            string `json:"id,omitempty"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Role          string `json:"role" validate:"required,oneof=admin photographer client editor salesRep"`
	Phone         string `json:"phone,omitempty"`
	Company       string `json:"company,omitempty"`
	LicenseNumber string `json:"licenseNumber" validate:"required_if=Role client"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city" validate:"required_unless=Role salesRep"`
	State         string `json:"state" validate:"required_unless=Role salesRep"`
	Zipcode       string `json:"zipcode" validate:"required_unless=Role salesRep"`
	Bio           string `json:"bio,omitempty"`

	// Sales rep fields.
	RepPayoutEmail     string   `json:"repPayoutEmail,omitempty" validate:"omitempty,email"`
	RepPayoutFrequency string   `json:"repPayoutFrequency,omitempty" validate:"omitempty,oneof=weekly biweekly monthly"`
	RepCommissionRate  string   `json:"repCommissionRate,omitempty"`
	RepHomeStreet      string   `json:"repHomeStreet,omitempty"`
	RepHomeCity        string   `json:"repHomeCity,omitempty"`
	RepHomeState       string   `json:"repHomeState,omitempty"`
	RepHomeZipcode     string   `json:"repHomeZipcode,omitempty"`
	RepSalesCategories []string `json:"repSalesCategories,omitempty"`

	// Photographer document references. Uploading the bytes happens elsewhere.
	PilotLicenseFile string `json:"pilotLicenseFile,omitempty"`
	InsuranceFile    string `json:"insuranceFile,omitempty"`

	// CreatedByID is the creator a superadmin picked; ignored for other viewers.
	CreatedByID string `json:"createdById,omitempty"`
}

// Account is a user record returned by the backend.
type Account struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	FirstName     string          `json:"first_name,omitempty"`
	LastName      string          `json:"last_name,omitempty"`
	Email         string          `json:"email"`
	Username      string          `json:"username,omitempty"`
	Role          string          `json:"role"`
	City          string          `json:"city,omitempty"`
	State         string          `json:"state,omitempty"`
	Zipcode       string          `json:"zipcode,omitempty"`
	LicenseNumber string          `json:"license_number,omitempty"`
	CreatedByID   string          `json:"created_by_id,omitempty"`
	CreatedByName string          `json:"created_by_name,omitempty"`
	Metadata      AccountMetadata `json:"metadata"`
}

// DisplayName prefers the full name, then first/last, then email.
func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if n := strings.TrimSpace(a.FirstName + " " + a.LastName); n != "" {
		return n
	}
	return a.Email
}

// Viewer is the dashboard user issuing the request.
type Viewer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Creator is the created_by pair recorded on new accounts.
type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

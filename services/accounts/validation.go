package accounts

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"shootdesk/models"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages keyed by the form's JSON field names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid account form: " + strings.Join(parts, "; ")
}

var fieldLabels = map[string]string{
	"firstName":          "First name",
	"lastName":           "Last name",
	"email":              "Email",
	"role":               "Role",
	"licenseNumber":      "License number",
	"city":               "City",
	"state":              "State",
	"zipcode":            "Zip code",
	"repPayoutEmail":     "Payout email",
	"repPayoutFrequency": "Payout frequency",
	"repCommissionRate":  "Commission rate",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func messageFor(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid"
	}
}

// Validate applies the account form schema. First and last name, a valid email and
// the role are always required; the license number only for clients; city, state
// and zip code for every role except sales reps.
func Validate(v models.AccountFormValues) error {
	fields := map[string]string{}

	if err := formValidator().Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate account form: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = messageFor(fe)
			}
		}
	}

	if v.Role == models.RoleSalesRep && strings.TrimSpace(v.RepCommissionRate) != "" {
		if _, ok := ParseCommission(v.RepCommissionRate); !ok {
			fields["repCommissionRate"] = "Commission rate must be a number between 0 and 100"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ParseCommission parses a percentage such as "12.5" or "12.5%".
func ParseCommission(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return f, true
}

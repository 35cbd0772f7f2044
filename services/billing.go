package services

import (
	"regexp"

	"storefront-service/models"
)

// Matches local@domain.tld; anything stricter rejects real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Please enter a valid email address"
)

// ValidateBilling checks the billing record and returns field-scoped error
// messages keyed by field name. An empty map means the record is valid.
// addressLine2, state and phone are optional; the email format is only
// reported against the email field.
func ValidateBilling(details models.BillingDetails) map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"fullName":     details.FullName,
		"email":        details.Email,
		"addressLine1": details.AddressLine1,
		"city":         details.City,
		"country":      details.Country,
		"postalCode":   details.PostalCode,
	}
	for field, value := range required {
		if value == "" {
			errs[field] = msgRequired
		}
	}

	if details.Email != "" && !emailPattern.MatchString(details.Email) {
		errs["email"] = msgInvalidEmail
	}

	return errs
}

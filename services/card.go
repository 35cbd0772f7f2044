package services

import (
	"strings"
	"unicode"

	"storefront-service/models"
)

// Payment methods accepted at checkout. Card is the recommended default.
const (
	PaymentMethodCard     = "card"
	PaymentMethodPayoneer = "payoneer"
)

// IsSupportedPaymentMethod reports whether method is one of the accepted
// payment methods.
func IsSupportedPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodPayoneer:
		return true
	default:
		return false
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber strips non-digits, caps the input at 16 digits and
// groups them by four: "4242424242424242" -> "4242 4242 4242 4242".
func FormatCardNumber(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the MM/YY slash as the user types:
// "1225" -> "12/25", "12" -> "12/".
func FormatExpiry(value string) string {
	digits := digitsOnly(value)
	if len(digits) >= 3 {
		end := len(digits)
		if end > 4 {
			end = 4
		}
		return digits[:2] + "/" + digits[2:end]
	}
	if len(digits) == 2 {
		return digits + "/"
	}
	return digits
}

// ValidateCard enforces the minimum card constraints: 16 digits, a
// cardholder name, a complete MM/YY expiry and a 3-4 digit CVC. Errors are
// keyed by field, matching the billing validation shape.
func ValidateCard(card models.CardDetails) map[string]string {
	errs := make(map[string]string)

	if len(digitsOnly(card.Number)) != 16 {
		errs["cardNumber"] = "Valid card number is required"
	}
	if strings.TrimSpace(card.Name) == "" {
		errs["cardName"] = "Name on card is required"
	}
	if !strings.Contains(card.Expiry, "/") || len(card.Expiry) < 5 {
		errs["expiry"] = "Valid expiry date is required (MM/YY)"
	}
	if cvc := digitsOnly(card.CVC); len(cvc) < 3 || len(cvc) > 4 {
		errs["cvc"] = "Valid CVC is required"
	}

	return errs
}

package models

import "time"

// CheckoutStep is the position of a session in the checkout flow.
// Steps only ever advance; there is no backward transition.
type CheckoutStep int

const (
	StepBilling CheckoutStep = iota
	StepPayment
	StepConfirmation
)

func (s CheckoutStep) String() string {
	switch s {
	case StepBilling:
		return "billing"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// BillingDetails is the validated buyer record collected at the billing
// step. It is immutable once attached to a session.
type BillingDetails struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
}

// CheckoutSession tracks one buyer's progress through billing, payment and
// confirmation for a single product.
type CheckoutSession struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	Step        CheckoutStep    `json:"step"`
	Billing     *BillingDetails `json:"billing,omitempty"`
	OrderNumber string          `json:"orderNumber,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

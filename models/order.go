package models

// CardDetails carries raw card input for the card payment method. The
// fields are validated and then discarded; they are never stored or logged.
type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// OrderRequest is the payload for processing an order.
type OrderRequest struct {
	PaymentMethod string       `json:"paymentMethod"`
	Email         string       `json:"email"`
	ProductID     string       `json:"productId"`
	CardDetails   *CardDetails `json:"cardDetails,omitempty"`
}

// OrderResult is the outcome of a single order submission. Orders are not
// persisted; resubmitting draws a fresh order number.
type OrderResult struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Message     string `json:"message,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	ContactURL  string `json:"contactUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

package services

import (
	"context"
	"errors"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidStep is returned when a step submission does not match the
// session's current step, e.g. a re-posted billing form after the session
// already advanced. The session is left untouched.
var ErrInvalidStep = errors.New("submission does not match current checkout step")

const defaultSessionTTL = 30 * time.Minute

// PaymentRequest is the payment-step input. Email and product id are not
// part of it; they come from the session so the payment step cannot
// contradict the billing step.
type PaymentRequest struct {
	Method string              `json:"paymentMethod"`
	Card   *models.CardDetails `json:"cardDetails,omitempty"`
}

// CheckoutService drives a session through billing, payment and
// confirmation. Steps advance by exactly one per completed submission and
// never go back; a failed payment leaves the session at the payment step.
type CheckoutService struct {
	catalog  *CatalogService
	orders   *OrderService
	sessions repository.SessionStore
	ttl      time.Duration
}

func NewCheckoutService(catalog *CatalogService, orders *OrderService, sessions repository.SessionStore) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		orders:   orders,
		sessions: sessions,
		ttl:      defaultSessionTTL,
	}
}

// Start opens a session for one product. The product must exist; an
// unknown id returns repository.ErrProductNotFound and no session is
// created.
func (s *CheckoutService) Start(ctx context.Context, productID string) (*models.CheckoutSession, error) {
	if _, err := s.catalog.Get(ctx, productID); err != nil {
		return nil, err
	}

	session := &models.CheckoutSession{
		ID:        uuid.NewString(),
		ProductID: productID,
		Step:      models.StepBilling,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, err
	}

	zap.L().Info("Checkout session started",
		zap.String("session_id", session.ID),
		zap.String("product_id", productID),
	)
	return session, nil
}

// Get returns the current session state.
func (s *CheckoutService) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SubmitBilling validates the billing record and, if valid, stores it and
// advances the session to the payment step. Field errors block the
// transition. Only legal while the session is at the billing step, so the
// step advances once no matter how many times the form is re-posted.
func (s *CheckoutService) SubmitBilling(ctx context.Context, sessionID string, details models.BillingDetails) (*models.CheckoutSession, map[string]string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != models.StepBilling {
		return nil, nil, ErrInvalidStep
	}

	if fieldErrs := ValidateBilling(details); len(fieldErrs) > 0 {
		return session, fieldErrs, nil
	}

	session.Billing = &details
	session.Step = models.StepPayment
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, nil, err
	}

	zap.L().Info("Billing step completed", zap.String("session_id", session.ID))
	return session, nil, nil
}

// SubmitPayment validates the payment input, submits the order with the
// session's billing email and product id, and on success stores the order
// number and advances to confirmation. On a failed submission the session
// stays at the payment step and remains resubmittable.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, req PaymentRequest) (*models.CheckoutSession, *models.OrderResult, map[string]string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if session.Step != models.StepPayment {
		return nil, nil, nil, ErrInvalidStep
	}

	if !IsSupportedPaymentMethod(req.Method) {
		return session, nil, map[string]string{"paymentMethod": "Unsupported payment method"}, nil
	}
	if req.Method == PaymentMethodCard {
		card := models.CardDetails{}
		if req.Card != nil {
			card = *req.Card
		}
		if fieldErrs := ValidateCard(card); len(fieldErrs) > 0 {
			return session, nil, fieldErrs, nil
		}
	}

	result := s.orders.Submit(ctx, models.OrderRequest{
		PaymentMethod: req.Method,
		Email:         session.Billing.Email,
		ProductID:     session.ProductID,
	})
	if !result.Success {
		zap.L().Warn("Order submission failed",
			zap.String("session_id", session.ID),
			zap.String("error", result.Error),
		)
		return session, result, nil, nil
	}

	session.OrderNumber = result.OrderNumber
	session.Step = models.StepConfirmation
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		return nil, nil, nil, err
	}

	zap.L().Info("Checkout completed",
		zap.String("session_id", session.ID),
		zap.String("order_number", session.OrderNumber),
	)
	return session, result, nil, nil
}

package services

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// OrderService processes order submissions. There is no retry, timeout or
// idempotency key: every submission is a fresh invocation and draws a new
// random order number. Orders are not persisted.
type OrderService struct {
	products       repository.ProductRepo
	notifier       OrderNotifier
	supportContact string
}

func NewOrderService(products repository.ProductRepo, notifier OrderNotifier, supportContact string) *OrderService {
	return &OrderService{products: products, notifier: notifier, supportContact: supportContact}
}

// newOrderNumber synthesizes an order number like ORD-0042.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%04d", rand.Intn(10000))
}

// Submit processes one order. A product-lookup miss resolves to
// {success:false, error:"Product not found"}; any other failure carries its
// message the same way. Card details on the request are already validated
// upstream and are dropped here without being read.
func (s *OrderService) Submit(ctx context.Context, req models.OrderRequest) *models.OrderResult {
	zap.L().Info("Processing order",
		zap.String("payment_method", req.PaymentMethod),
		zap.String("email", req.Email),
		zap.String("product_id", req.ProductID),
	)

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return &models.OrderResult{Success: false, Error: "Product not found"}
		}
		zap.L().Error("Product lookup failed", zap.String("product_id", req.ProductID), zap.Error(err))
		return &models.OrderResult{Success: false, Error: err.Error()}
	}

	orderNumber := newOrderNumber()

	if err := s.notifier.OrderConfirmed(ctx, req.Email, orderNumber, product.Name); err != nil {
		// The buyer already has a valid order; losing the notification is
		// logged, not fatal.
		zap.L().Error("Order confirmation notification failed",
			zap.String("order_number", orderNumber), zap.Error(err))
	}

	result := &models.OrderResult{
		Success:     true,
		OrderNumber: orderNumber,
		Message:     "Payment processed successfully",
		DownloadURL: "/api/download/" + orderNumber,
	}
	if req.PaymentMethod != PaymentMethodCard {
		result.ContactURL = s.contactLink(product.Name, orderNumber)
	}
	return result
}

// contactLink builds the messaging deep link offered with non-card payment
// methods. Opening it is a user-initiated navigation, not part of the
// checkout flow.
func (s *OrderService) contactLink(productName, orderNumber string) string {
	if s.supportContact == "" {
		return ""
	}
	text := fmt.Sprintf("Hi, I just placed order %s for %s and paid outside of card checkout.", orderNumber, productName)
	return "https://wa.me/" + s.supportContact + "?text=" + url.QueryEscape(text)
}

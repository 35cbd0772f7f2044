package repository

import (
	"context"
	"errors"
	"time"

	"storefront-service/models"
)

var (
	// ErrProductNotFound is returned when a product id has no match.
	ErrProductNotFound = errors.New("product not found")
	// ErrSessionNotFound is returned for unknown or expired checkout sessions.
	ErrSessionNotFound = errors.New("checkout session not found")
)

// ProductRepo defines the catalog store operations. The interface uses
// plain Go types so adapters can be swapped without touching callers.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// AdminUserRepo defines lookup and persistence for console operators.
type AdminUserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

// SessionStore holds checkout sessions for the lifetime of one checkout.
// Implementations expire sessions after ttl; an expired session reads as
// ErrSessionNotFound.
type SessionStore interface {
	Save(ctx context.Context, session *models.CheckoutSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService owns the product catalog. Reads degrade to a built-in
// demo catalog when the store is unreachable; writes go through to the
// store and are answered with a full re-list so callers always see the
// post-write state.
type CatalogService struct {
	repo  repository.ProductRepo
	cache *redis.Client
}

// NewCatalogService creates a catalog service. cache may be nil, in which
// case every read hits the store.
func NewCatalogService(repo repository.ProductRepo, cache *redis.Client) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns all products, newest first. A store failure never
// propagates: the fixed demo catalog is substituted and degraded is true.
// Cache failures are ignored.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, bool) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, false
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Warn("Catalog fetch failed, serving demo products", zap.Error(err))
		return models.DemoProducts(), true
	}

	s.writeCache(ctx, products)
	return products, false
}

// Get returns a single product or repository.ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a product and returns the refreshed catalog.
func (s *CatalogService) Create(ctx context.Context, product *models.Product) ([]models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := s.repo.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		return nil, err
	}
	zap.L().Info("Product created", zap.String("id", product.ID), zap.String("name", product.Name))
	return s.relist(ctx)
}

// Update modifies a product and returns the refreshed catalog.
func (s *CatalogService) Update(ctx context.Context, id string, product *models.Product) ([]models.Product, error) {
	if err := s.repo.Update(ctx, id, product); err != nil {
		if err != repository.ErrProductNotFound {
			zap.L().Error("Failed to update product", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("Product updated", zap.String("id", id))
	return s.relist(ctx)
}

// Delete removes a product and returns the refreshed catalog.
func (s *CatalogService) Delete(ctx context.Context, id string) ([]models.Product, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err != repository.ErrProductNotFound {
			zap.L().Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("Product deleted", zap.String("id", id))
	return s.relist(ctx)
}

// relist drops the cache and re-reads the full catalog after a write.
// Read-your-writes comes from the re-list, not from merging locally.
func (s *CatalogService) relist(ctx context.Context) ([]models.Product, error) {
	s.invalidateCache(ctx)
	products, degraded := s.List(ctx)
	if degraded {
		// The write succeeded but the follow-up list fell back to demo
		// data. Surface the demo list rather than failing the write.
		zap.L().Warn("Post-write re-list degraded to demo catalog")
	}
	return products, nil
}

func (s *CatalogService) readCache(ctx context.Context) []models.Product {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}

func (s *CatalogService) writeCache(ctx context.Context, products []models.Product) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
		zap.L().Debug("Catalog cache write failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		zap.L().Debug("Catalog cache invalidation failed", zap.Error(err))
	}
}

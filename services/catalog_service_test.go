package services

import (
	"context"
	"errors"
	"testing"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/stretchr/testify/assert"
)

// fakeProductRepo is an in-memory ProductRepo shared by the service tests.
type fakeProductRepo struct {
	products []models.Product
	failAll  bool
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	if f.failAll {
		return errors.New("connection refused")
	}
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, product *models.Product) error {
	if f.failAll {
		return errors.New("connection refused")
	}
	for i := range f.products {
		if f.products[i].ID == id {
			product.ID = id
			f.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.failAll {
		return errors.New("connection refused")
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func demoBackedRepo() *fakeProductRepo {
	return &fakeProductRepo{products: models.DemoProducts()}
}

func TestCatalogList(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsStoreProducts", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		products, degraded := svc.List(ctx)
		assert.False(t, degraded)
		assert.Len(t, products, 4)
	})

	t.Run("FallsBackToDemoCatalogOnStoreFailure", func(t *testing.T) {
		svc := NewCatalogService(&fakeProductRepo{failAll: true}, nil)
		products, degraded := svc.List(ctx)
		assert.True(t, degraded)
		assert.Equal(t, models.DemoProducts(), products)
	})

	t.Run("DemoCatalogPrices", func(t *testing.T) {
		svc := NewCatalogService(&fakeProductRepo{failAll: true}, nil)
		products, _ := svc.List(ctx)
		assert.Equal(t, 49.99, products[0].Price)
		assert.Equal(t, 39.99, products[1].Price)
		assert.Equal(t, 29.99, products[2].Price)
		assert.Equal(t, 59.99, products[3].Price)
	})
}

func TestCatalogGet(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(demoBackedRepo(), nil)

	t.Run("Found", func(t *testing.T) {
		product, err := svc.Get(ctx, "2")
		assert.NoError(t, err)
		assert.Equal(t, 39.99, product.Price)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}

func TestCatalogWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateReturnsRefreshedList", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		products, err := svc.Create(ctx, &models.Product{Name: "New Tool", Price: 19.99})
		assert.NoError(t, err)
		assert.Len(t, products, 5)
	})

	t.Run("CreateAssignsIDWhenEmpty", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		product := &models.Product{Name: "New Tool"}
		_, err := svc.Create(ctx, product)
		assert.NoError(t, err)
		assert.NotEmpty(t, product.ID)
	})

	t.Run("UpdateReturnsRefreshedList", func(t *testing.T) {
		repo := demoBackedRepo()
		svc := NewCatalogService(repo, nil)
		products, err := svc.Update(ctx, "2", &models.Product{Name: "Renamed", Price: 44.99})
		assert.NoError(t, err)
		assert.Len(t, products, 4)

		updated, err := svc.Get(ctx, "2")
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		_, err := svc.Update(ctx, "missing", &models.Product{Name: "x"})
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("DeleteReturnsRefreshedList", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		products, err := svc.Delete(ctx, "3")
		assert.NoError(t, err)
		assert.Len(t, products, 3)
		for _, p := range products {
			assert.NotEqual(t, "3", p.ID)
		}
	})

	t.Run("DeleteUnknownID", func(t *testing.T) {
		svc := NewCatalogService(demoBackedRepo(), nil)
		_, err := svc.Delete(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}

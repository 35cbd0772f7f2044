package controllers

import (
	"context"
	"net/http"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ICatalogService is the catalog surface the controller needs; the
// interface exists so handler tests can fake it.
type ICatalogService interface {
	List(ctx context.Context) ([]models.Product, bool)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) ([]models.Product, error)
	Update(ctx context.Context, id string, product *models.Product) ([]models.Product, error)
	Delete(ctx context.Context, id string) ([]models.Product, error)
}

type ProductController struct {
	catalog   ICatalogService
	validator *RequestValidator
}

func NewProductController(catalog ICatalogService) *ProductController {
	return &ProductController{catalog: catalog, validator: NewRequestValidator()}
}

// GetProducts returns the full catalog, newest first. When the store is
// unreachable the demo catalog is served and degraded is set, never an
// error.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, degraded := pc.catalog.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"degraded": degraded,
	})
}

// GetProductByID returns one product or 404.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Failed to fetch product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct inserts a product and answers with the refreshed catalog.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	product, err := pc.validator.ParseProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := pc.catalog.Create(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"products": products})
}

// UpdateProduct modifies a product and answers with the refreshed catalog.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.validator.ParseProductRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := pc.catalog.Update(c.Request.Context(), id, product)
	if err != nil {
		if err == repository.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// DeleteProduct removes a product and answers with the refreshed catalog.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	products, err := pc.catalog.Delete(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

package controllers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const MaxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ProductRequest is the admin payload for creating or updating a product.
// Price zero is legal: it marks a free product.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Image       string   `json:"image" validate:"required,url"`
	Features    []string `json:"features"`
}

// RequestValidator handles admin input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseProductRequest binds and validates a product create/update body.
func (rv *RequestValidator) ParseProductRequest(c *gin.Context) (*models.Product, error) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if err := rv.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Features:    req.Features,
	}, nil
}

// IsValidImageType checks the upload by content type, falling back to the
// file extension.
func (rv *RequestValidator) IsValidImageType(file *multipart.FileHeader) bool {
	if allowedImageTypes[file.Header.Get("Content-Type")] {
		return true
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	}
	return false
}

// ValidateFileSize rejects uploads over the limit.
func (rv *RequestValidator) ValidateFileSize(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file too large (max %dMB)", MaxUploadSize/(1024*1024))
	}
	return nil
}

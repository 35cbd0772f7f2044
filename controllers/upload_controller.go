package controllers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"storefront-service/pkg/aws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadController struct {
	images    *aws.ImageStore
	validator *RequestValidator
}

func NewUploadController(images *aws.ImageStore) *UploadController {
	return &UploadController{images: images, validator: NewRequestValidator()}
}

// UploadImage accepts one multipart product image and streams it to the
// object store, answering with the public URL for the product form.
func (uc *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}

	if !uc.validator.IsValidImageType(fileHeader) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Allowed: jpeg, jpg, png, webp, gif"})
		return
	}
	if err := uc.validator.ValidateFileSize(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	key := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	url, err := uc.images.Upload(c.Request.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		zap.L().Error("Image upload failed", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// PresignUpload hands out a short-lived presigned PUT URL so the console
// can upload directly to the bucket.
func (uc *UploadController) PresignUpload(c *gin.Context) {
	filename := c.Query("filename")
	contentType := c.Query("contentType")
	if filename == "" || contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename and contentType are required"})
		return
	}
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Allowed: jpeg, jpg, png, webp, gif"})
		return
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	url, err := uc.images.PresignPut(c.Request.Context(), key, contentType, 15*time.Minute)
	if err != nil {
		zap.L().Error("Failed to presign upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to presign upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

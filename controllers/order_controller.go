package controllers

import (
	"context"
	"net/http"
	"regexp"

	"storefront-service/models"

	"github.com/gin-gonic/gin"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}$`)

// IOrderService processes order submissions.
type IOrderService interface {
	Submit(ctx context.Context, req models.OrderRequest) *models.OrderResult
}

type OrderController struct {
	orders IOrderService
}

func NewOrderController(orders IOrderService) *OrderController {
	return &OrderController{orders: orders}
}

// ProcessOrder is the order-processing endpoint: 200 with the result on
// success, 400 with {success:false, error} on any failure. Card details on
// the request are accepted but never stored or echoed back.
func (oc *OrderController) ProcessOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.OrderResult{Success: false, Error: "Invalid request body"})
		return
	}

	result := oc.orders.Submit(c.Request.Context(), req)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Download is the delivery stub behind the downloadUrl returned with each
// order. Orders are not persisted, so it only checks the number's shape.
func (oc *OrderController) Download(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	if !orderNumberPattern.MatchString(orderNumber) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderNumber": orderNumber,
		"status":      "ready",
		"message":     "Your download is being prepared",
	})
}

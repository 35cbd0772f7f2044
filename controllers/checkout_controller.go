package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

type startCheckoutRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// StartCheckout opens a session for an explicitly named product. An
// unknown product is rejected up front, mirroring the storefront's
// redirect-away guard.
func (cc *CheckoutController) StartCheckout(c *gin.Context) {
	var req startCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	session, err := cc.checkout.Start(c.Request.Context(), req.ProductID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
		return
	}

	c.JSON(http.StatusCreated, sessionView(session))
}

// GetCheckout returns the current session state, including the data the
// confirmation view renders.
func (cc *CheckoutController) GetCheckout(c *gin.Context) {
	session, err := cc.checkout.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		cc.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// SubmitBilling validates the billing record and advances the session to
// the payment step. Validation failures come back field-scoped and leave
// the session where it was.
func (cc *CheckoutController) SubmitBilling(c *gin.Context) {
	var details models.BillingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, fieldErrs, err := cc.checkout.SubmitBilling(c.Request.Context(), c.Param("id"), details)
	if err != nil {
		cc.writeSessionError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, sessionView(session))
}

// SubmitPayment runs the payment step. A failed submission keeps the
// session at the payment step and stays resubmittable; success moves it to
// confirmation.
func (cc *CheckoutController) SubmitPayment(c *gin.Context) {
	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, result, fieldErrs, err := cc.checkout.SubmitPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		cc.writeSessionError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"session": sessionView(session), "result": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sessionView(session), "result": result})
}

func (cc *CheckoutController) writeSessionError(c *gin.Context, err error) {
	switch err {
	case repository.ErrSessionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
	case services.ErrInvalidStep:
		c.JSON(http.StatusConflict, gin.H{"error": "Submission does not match the current checkout step"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// sessionView shapes a session for responses. Billing is reduced to the
// email; the full record stays server-side.
func sessionView(session *models.CheckoutSession) gin.H {
	view := gin.H{
		"id":        session.ID,
		"productId": session.ProductID,
		"step":      int(session.Step),
		"stepName":  session.Step.String(),
	}
	if session.Billing != nil {
		view["email"] = session.Billing.Email
	}
	if session.OrderNumber != "" {
		view["orderNumber"] = session.OrderNumber
	}
	return view
}

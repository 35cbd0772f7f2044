package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// demoRepo is an in-memory ProductRepo seeded with the demo catalog.
type demoRepo struct {
	products []models.Product
}

func newDemoRepo() *demoRepo {
	return &demoRepo{products: models.DemoProducts()}
}

func (r *demoRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.products, nil
}

func (r *demoRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *demoRepo) Create(ctx context.Context, product *models.Product) error {
	r.products = append(r.products, *product)
	return nil
}

func (r *demoRepo) Update(ctx context.Context, id string, product *models.Product) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (r *demoRepo) Delete(ctx context.Context, id string) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func checkoutRouter() *gin.Engine {
	repo := newDemoRepo()
	catalog := services.NewCatalogService(repo, nil)
	orders := services.NewOrderService(repo, services.NewLogNotifier(), "")
	checkout := services.NewCheckoutService(catalog, orders, repository.NewMemorySessionStore())
	controller := NewCheckoutController(checkout)

	router := gin.New()
	router.POST("/checkout", controller.StartCheckout)
	router.GET("/checkout/:id", controller.GetCheckout)
	router.POST("/checkout/:id/billing", controller.SubmitBilling)
	router.POST("/checkout/:id/payment", controller.SubmitPayment)
	return router
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func startSession(t *testing.T, router *gin.Engine, productID string) string {
	t.Helper()
	recorder := postJSON(router, "/checkout", `{"productId":"`+productID+`"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	return body.ID
}

const billingPayload = `{
	"fullName": "John Doe",
	"email": "john@example.com",
	"addressLine1": "1 Main St",
	"city": "Springfield",
	"country": "US",
	"postalCode": "12345"
}`

const cardPaymentPayload = `{
	"paymentMethod": "card",
	"cardDetails": {"number": "4242 4242 4242 4242", "name": "John Doe", "expiry": "12/25", "cvc": "123"}
}`

func TestStartCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := checkoutRouter()

	t.Run("Success - 201 Created", func(t *testing.T) {
		recorder := postJSON(router, "/checkout", `{"productId":"2"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"productId":"2"`)
		assert.Contains(t, recorder.Body.String(), `"stepName":"billing"`)
	})

	t.Run("Unknown Product - 404", func(t *testing.T) {
		recorder := postJSON(router, "/checkout", `{"productId":"missing"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product not found")
	})

	t.Run("Missing Product ID - 400", func(t *testing.T) {
		recorder := postJSON(router, "/checkout", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "productId is required")
	})
}

func TestGetCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := checkoutRouter()

	t.Run("Success - 200 OK", func(t *testing.T) {
		id := startSession(t, router, "1")

		req, _ := http.NewRequest(http.MethodGet, "/checkout/"+id, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"stepName":"billing"`)
	})

	t.Run("Unknown Session - 404", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/checkout/nope", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Checkout session not found")
	})
}

func TestSubmitBillingEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := checkoutRouter()

	t.Run("Valid Billing - 200 Advances To Payment", func(t *testing.T) {
		id := startSession(t, router, "2")

		recorder := postJSON(router, "/checkout/"+id+"/billing", billingPayload)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"stepName":"payment"`)
		assert.Contains(t, recorder.Body.String(), `"email":"john@example.com"`)
	})

	t.Run("Field Errors - 422", func(t *testing.T) {
		id := startSession(t, router, "2")

		recorder := postJSON(router, "/checkout/"+id+"/billing", `{"email":"bad"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "This field is required", body.Errors["fullName"])
		assert.Equal(t, "Please enter a valid email address", body.Errors["email"])
	})

	t.Run("Reposted Billing - 409", func(t *testing.T) {
		id := startSession(t, router, "2")
		assert.Equal(t, http.StatusOK, postJSON(router, "/checkout/"+id+"/billing", billingPayload).Code)

		recorder := postJSON(router, "/checkout/"+id+"/billing", billingPayload)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestSubmitPaymentEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := checkoutRouter()

	atPayment := func(t *testing.T) string {
		t.Helper()
		id := startSession(t, router, "2")
		assert.Equal(t, http.StatusOK, postJSON(router, "/checkout/"+id+"/billing", billingPayload).Code)
		return id
	}

	t.Run("Success - 200 Advances To Confirmation", func(t *testing.T) {
		id := atPayment(t)

		recorder := postJSON(router, "/checkout/"+id+"/payment", cardPaymentPayload)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Session struct {
				StepName    string `json:"stepName"`
				OrderNumber string `json:"orderNumber"`
				Email       string `json:"email"`
			} `json:"session"`
			Result models.OrderResult `json:"result"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "confirmation", body.Session.StepName)
		assert.Equal(t, "john@example.com", body.Session.Email)
		assert.Regexp(t, `^ORD-\d{4}$`, body.Session.OrderNumber)
		assert.True(t, body.Result.Success)
		assert.Equal(t, "/api/download/"+body.Session.OrderNumber, body.Result.DownloadURL)
	})

	t.Run("Payment Before Billing - 409", func(t *testing.T) {
		id := startSession(t, router, "2")

		recorder := postJSON(router, "/checkout/"+id+"/payment", cardPaymentPayload)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("Invalid Card - 422", func(t *testing.T) {
		id := atPayment(t)

		recorder := postJSON(router, "/checkout/"+id+"/payment", `{"paymentMethod":"card","cardDetails":{"number":"1234"}}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Contains(t, body.Errors, "cardNumber")
	})

	t.Run("Unsupported Method - 422", func(t *testing.T) {
		id := atPayment(t)

		recorder := postJSON(router, "/checkout/"+id+"/payment", `{"paymentMethod":"bitcoin"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Unsupported payment method")
	})

	t.Run("Reposted Payment After Confirmation - 409", func(t *testing.T) {
		id := atPayment(t)
		assert.Equal(t, http.StatusOK, postJSON(router, "/checkout/"+id+"/payment", cardPaymentPayload).Code)

		recorder := postJSON(router, "/checkout/"+id+"/payment", cardPaymentPayload)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

package routes

import (
	"time"

	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes wires the public storefront, the order-processing
// endpoint and the admin console onto the router.
func RegisterRoutes(
	r *gin.Engine,
	productController *controllers.ProductController,
	checkoutController *controllers.CheckoutController,
	orderController *controllers.OrderController,
	authController *controllers.AuthController,
	uploadController *controllers.UploadController,
	tokenService *services.TokenService,
) {
	// The storefront is served from arbitrary origins; preflight OPTIONS is
	// answered by the middleware with no body.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		MaxAge:          12 * time.Hour,
	}))

	products := r.Group("/products")
	{
		products.GET("", productController.GetProducts)
		products.GET("/:id", productController.GetProductByID)
	}

	checkout := r.Group("/checkout")
	{
		checkout.POST("", checkoutController.StartCheckout)
		checkout.GET("/:id", checkoutController.GetCheckout)
		checkout.POST("/:id/billing", checkoutController.SubmitBilling)
		checkout.POST("/:id/payment", checkoutController.SubmitPayment)
	}

	r.POST("/orders/process", orderController.ProcessOrder)
	r.GET("/api/download/:orderNumber", orderController.Download)

	admin := r.Group("/admin")
	{
		// Slow down credential guessing without locking out the console.
		admin.POST("/login", middleware.RateLimit(rate.Every(time.Minute/10), 5), authController.Login)
		admin.POST("/refresh", authController.Refresh)

		guarded := admin.Group("", middleware.RequireRole(tokenService, "admin"))
		{
			guarded.GET("/me", authController.Me)
			guarded.POST("/products", productController.CreateProduct)
			guarded.PUT("/products/:id", productController.UpdateProduct)
			guarded.DELETE("/products/:id", productController.DeleteProduct)
			guarded.POST("/products/upload", uploadController.UploadImage)
			guarded.GET("/products/upload-url", uploadController.PresignUpload)
		}
	}
}

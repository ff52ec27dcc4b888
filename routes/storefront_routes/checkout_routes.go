package storefront_routes

import (
	"time"

	store_checkout "github.com/16SULPHUR/new-vh-ecom/controllers/storefront/checkout_controller"
	"github.com/16SULPHUR/new-vh-ecom/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCheckoutRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/store/checkout")
	checkout.Use(middleware.CartSession())
	checkout.Use(middleware.RateLimiter(20, time.Minute))

	checkout.POST("", store_checkout.CreateCheckout)
	checkout.POST("/success", store_checkout.PaymentSuccess)
	checkout.POST("/failure", store_checkout.PaymentFailed)
}
